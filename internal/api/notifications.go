package api

import (
	"context"
	"net/http"
	"time"
)

// Notification is one entry in the partner's feed. Body is markdown.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
}

// ListNotifications fetches the feed, newest first.
func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := c.doJSON(ctx, http.MethodGet, "/partner/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
