package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/showsphere/showsphere-cli/internal/domain"
)

// VerifyToken exchanges a bearer token for its user. The endpoint answers
// with an array whose first element is the user object.
func (c *Client) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	var users []domain.User

	err := c.do(ctx, http.MethodGet, "/auth/verify", nil, token, nil, &users)
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, fmt.Errorf("auth/verify returned no user")
	}

	return &users[0], nil
}

// UpdateUser sends a partial profile update and returns the server's copy of
// the user.
func (c *Client) UpdateUser(ctx context.Context, userID string, fields domain.UserUpdate) (*domain.User, error) {
	query := url.Values{"id": {userID}}

	body := struct {
		UpdateFields domain.UserUpdate `json:"updateFields"`
	}{UpdateFields: fields}

	var resp struct {
		User domain.User `json:"user"`
	}

	err := c.do(ctx, http.MethodPut, "/auth/update", query, "", body, &resp)
	if err != nil {
		return nil, err
	}

	return &resp.User, nil
}
