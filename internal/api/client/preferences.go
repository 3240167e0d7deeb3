package client

import (
	"context"
	"fmt"

	domain "github.com/kejahub/keja-match/pkg/types"
)

// GetPreferences returns a user's stored preferences.
func (c *Client) GetPreferences(ctx context.Context, userID string) (*domain.UserPreferences, error) {
	var prefs domain.UserPreferences
	if err := c.get(ctx, fmt.Sprintf("/api/v1/users/%s/preferences", userID), &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// PutPreferences replaces a user's stored preferences.
func (c *Client) PutPreferences(
	ctx context.Context,
	userID string,
	prefs *domain.UserPreferences,
) (*domain.UserPreferences, error) {
	var stored domain.UserPreferences
	path := fmt.Sprintf("/api/v1/users/%s/preferences", userID)
	if err := c.put(ctx, path, prefs, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// MarkViewed records that the user viewed a listing.
func (c *Client) MarkViewed(ctx context.Context, userID, listingID string) error {
	path := fmt.Sprintf("/api/v1/users/%s/viewed/%s", userID, listingID)
	return c.post(ctx, path, nil, nil)
}

// MarkSaved records that the user saved a listing.
func (c *Client) MarkSaved(ctx context.Context, userID, listingID string) error {
	path := fmt.Sprintf("/api/v1/users/%s/saved/%s", userID, listingID)
	return c.post(ctx, path, nil, nil)
}
