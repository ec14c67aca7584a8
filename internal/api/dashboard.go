package api

import (
	"context"
	"net/http"
	"time"
)

// Metric is one slice of the reach breakdown on the dashboard.
type Metric struct {
	Label      string  `json:"label"`
	Percentage float64 `json:"percentage"`
}

// Dashboard is the partner's reach summary.
type Dashboard struct {
	TotalReach int      `json:"totalReach"`
	Metrics    []Metric `json:"metrics"`
}

// Payout is one past or scheduled payout line.
type Payout struct {
	Amount   float64   `json:"amount"`
	Currency string    `json:"currency"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
}

// Earnings is the partner's balance and payout history.
type Earnings struct {
	Balance    float64   `json:"balance"`
	Currency   string    `json:"currency"`
	NextPayout time.Time `json:"nextPayout"`
	Payouts    []Payout  `json:"payouts"`
}

// GetDashboard fetches the reach metrics.
func (c *Client) GetDashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	if err := c.doJSON(ctx, http.MethodGet, "/partner/dashboard", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// GetEarnings fetches the balance and payout history.
func (c *Client) GetEarnings(ctx context.Context) (*Earnings, error) {
	var e Earnings
	if err := c.doJSON(ctx, http.MethodGet, "/partner/earnings", nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
