package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// CollectionStatus filters the collections list. Mirrors the review
// pipeline tabs: created, pending, discarded.
type CollectionStatus string

const (
	CollectionCreated   CollectionStatus = "created"
	CollectionPending   CollectionStatus = "pending"
	CollectionDiscarded CollectionStatus = "discarded"
)

// Collection is one named group of submitted images.
type Collection struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Status     CollectionStatus `json:"status"`
	ImageCount int              `json:"imageCount"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// ListCollections fetches the partner's collections, optionally filtered
// by review status.
func (c *Client) ListCollections(ctx context.Context, status CollectionStatus) ([]Collection, error) {
	path := "/partner/collections"
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}

	var out []Collection
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadRequest describes one image submission from the upload wizard.
type UploadRequest struct {
	ImagePath      string // local file to attach
	CollectionName string // existing name, or the new collection's name
	NewCollection  bool
	Title          string
	Description    string
	Tags           []string
}

// UploadImage submits an image into a collection as multipart form data.
func (c *Client) UploadImage(ctx context.Context, req UploadRequest) error {
	fields := map[string]string{
		"collectionName":  req.CollectionName,
		"isNewCollection": strconv.FormatBool(req.NewCollection),
		"title":           req.Title,
		"description":     req.Description,
		"tags":            strings.Join(req.Tags, ","),
	}
	body, contentType, err := encodeMultipart(fields, "image", req.ImagePath)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/partner/collections/upload", body)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", contentType)

	return c.do(httpReq, nil)
}
