package adapter

import (
	"context"
	"net/http"

	"github.com/fairsplit-admin/internal/models"
)

// UsersPage is one server-side page of users.
type UsersPage struct {
	Users      []models.User     `json:"users"`
	Pagination models.Pagination `json:"pagination"`
}

// ListUsers fetches one page of users. The trailing slash matches the server's
// route registration.
func (c *Client) ListUsers(ctx context.Context, params ListParams) (*UsersPage, error) {
	var page UsersPage
	if err := c.call(ctx, http.MethodGet, "/users/", params.values(), nil, &page, "Failed to fetch users"); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetUser fetches a single user's detail record.
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	var data struct {
		User models.User `json:"user"`
	}
	if err := c.call(ctx, http.MethodGet, "/users/"+id, nil, nil, &data, "Failed to fetch user details"); err != nil {
		return nil, err
	}
	return &data.User, nil
}

// UpdateUserStatus flips a user's verification status.
func (c *Client) UpdateUserStatus(ctx context.Context, id, verify string) error {
	payload := map[string]string{"verify": verify}
	return c.call(ctx, http.MethodPatch, "/users/"+id+"/status", nil, payload, nil, "Failed to update user status")
}

// DeleteUser removes a single user. The API has no bulk endpoint for users;
// DeleteUsers folds single deletes into the shared bulk-result shape.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/users/"+id, nil, nil, nil, "Failed to delete user")
}

// DeleteUsers deletes each id in turn and partitions the outcomes.
func (c *Client) DeleteUsers(ctx context.Context, ids []string) (*models.BulkDeleteResult, error) {
	result := &models.BulkDeleteResult{Failed: []string{}}
	for _, id := range ids {
		if err := c.DeleteUser(ctx, id); err != nil {
			result.FailedCount++
			result.Failed = append(result.Failed, id)
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}
