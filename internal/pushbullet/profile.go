package pushbullet

import (
	"context"
	"fmt"

	"github.com/notify-you/notify-you/internal/transport"
)

// Profile is the account information of the user.
type Profile struct {
	Active          bool    `json:"active"`
	Iden            string  `json:"iden"`
	Created         float64 `json:"created"`
	Modified        float64 `json:"modified"`
	Email           string  `json:"email"`
	EmailNormalized string  `json:"email_normalized"`
	Name            string  `json:"name"`
	ImageURL        string  `json:"image_url"`
	MaxUploadSize   int64   `json:"max_upload_size"`
}

// GetProfile fetches the profile of the user.
// A response that is not a profile fails with [ErrDeserialization].
func (c *Client) GetProfile(ctx context.Context) (Profile, error) {
	resp, err := transport.Get(ctx, c.doer, c.url("/users/me"), c.header())
	if err != nil {
		return Profile{}, fmt.Errorf("failed to get the profile: %w", err)
	}

	var profile Profile
	if err := decode(resp, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}
