package api

import (
	"context"
	"fmt"
	"net/http"
)

// ExchangeIdentityToken trades an external identity-provider token for a
// backend session credential and persists it as the active bearer token.
// On any failure nothing is persisted and an *AuthExchangeError is
// returned; the user retries by signing in again.
func (c *Client) ExchangeIdentityToken(ctx context.Context, idToken string) (string, error) {
	req := struct {
		Token string `json:"token"`
	}{Token: idToken}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login-google-firebase", req, &resp); err != nil {
		return "", &AuthExchangeError{Err: err}
	}
	if resp.Token == "" {
		return "", &AuthExchangeError{Err: fmt.Errorf("response is missing the session token")}
	}

	if err := c.creds.Set(resp.Token); err != nil {
		return "", &AuthExchangeError{Err: err}
	}
	c.log.Info("identity exchange succeeded, session established")
	return resp.Token, nil
}

// Logout discards the stored credential. Purely local; the backend learns
// about it when the token stops being presented.
func (c *Client) Logout() error {
	return c.creds.Clear()
}
