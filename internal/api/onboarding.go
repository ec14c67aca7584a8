package api

import (
	"context"
	"net/http"

	"wallpartners/internal/onboarding"
)

// SubmitOnboarding posts the full onboarding form as a flat JSON object.
// Any non-2xx answer becomes a *SubmissionError wrapping the backend's
// message; the caller's state is expected to stay unchanged on failure.
func (c *Client) SubmitOnboarding(ctx context.Context, form onboarding.Form) error {
	if err := c.doJSON(ctx, http.MethodPost, "/auth/onboarding", form, nil); err != nil {
		return &SubmissionError{Err: err}
	}
	return nil
}

// ApprovalStatus polls the backend's verdict on a submitted profile.
func (c *Client) ApprovalStatus(ctx context.Context) (onboarding.Decision, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/auth/onboarding/status", nil, &resp); err != nil {
		return onboarding.DecisionPending, err
	}
	return onboarding.ParseDecision(resp.Status), nil
}
