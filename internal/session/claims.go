package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of token claims shown by `wall status`. The backend
// signs the token; the client never verifies it, it only displays what the
// token says about the session.
type Claims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// InspectToken decodes the credential without verifying its signature.
// Verification is the backend's job; a tampered token simply stops working
// at the next request.
func InspectToken(token string) (*Claims, error) {
	var raw struct {
		jwt.RegisteredClaims
		Email string `json:"email"`
	}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &raw); err != nil {
		return nil, fmt.Errorf("credential is not a decodable JWT: %w", err)
	}

	c := &Claims{
		Subject: raw.Subject,
		Email:   raw.Email,
	}
	if raw.ExpiresAt != nil {
		c.ExpiresAt = raw.ExpiresAt.Time
	}
	return c, nil
}
