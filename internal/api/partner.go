package api

import (
	"context"
	"net/http"
)

// Profile is the partner's public-facing profile.
type Profile struct {
	FullName  string `json:"fullName"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	Portfolio string `json:"portfolio"`
	AvatarURL string `json:"avatar"`
}

// GetProfile fetches the partner's profile.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.doJSON(ctx, http.MethodGet, "/partner/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile patches the profile. When avatarPath names a local image
// the request switches to multipart form encoding with the image attached;
// otherwise it is plain JSON.
func (c *Client) UpdateProfile(ctx context.Context, p Profile, avatarPath string) (*Profile, error) {
	if avatarPath == "" {
		var updated Profile
		if err := c.doJSON(ctx, http.MethodPatch, "/partner/profile", p, &updated); err != nil {
			return nil, err
		}
		return &updated, nil
	}

	fields := map[string]string{
		"fullName":  p.FullName,
		"bio":       p.Bio,
		"location":  p.Location,
		"portfolio": p.Portfolio,
	}
	body, contentType, err := encodeMultipart(fields, "avatar", avatarPath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.base+"/partner/profile", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	var updated Profile
	if err := c.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
