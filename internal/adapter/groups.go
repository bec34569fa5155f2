package adapter

import (
	"context"
	"net/http"

	"github.com/fairsplit-admin/internal/models"
)

// GroupListParams extends the shared list parameters with server-side sorting.
// Valid sort keys: name, createdAt, updatedAt, members.
type GroupListParams struct {
	ListParams
	SortBy    string
	SortOrder string
}

// GroupsPage is one server-side page of groups.
type GroupsPage struct {
	Groups     []models.Group    `json:"groups"`
	Pagination models.Pagination `json:"pagination"`
}

// ListGroups fetches one page of groups with the given sort order.
func (c *Client) ListGroups(ctx context.Context, params GroupListParams) (*GroupsPage, error) {
	values := params.values()
	values.Set("sortBy", params.SortBy)
	values.Set("sortOrder", params.SortOrder)

	var page GroupsPage
	if err := c.call(ctx, http.MethodGet, "/groups", values, nil, &page, "Failed to fetch groups"); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetGroup fetches a single group's detail record.
func (c *Client) GetGroup(ctx context.Context, id string) (*models.Group, error) {
	var data struct {
		Group models.Group `json:"group"`
	}
	if err := c.call(ctx, http.MethodGet, "/groups/"+id, nil, nil, &data, "Failed to fetch group details"); err != nil {
		return nil, err
	}
	return &data.Group, nil
}

// UpdateGroupStatus changes a group's status (active, inactive, archived).
func (c *Client) UpdateGroupStatus(ctx context.Context, id, status string) error {
	payload := map[string]string{"status": status}
	return c.call(ctx, http.MethodPatch, "/groups/"+id+"/status", nil, payload, nil, "Failed to update group status")
}

// DeleteGroup removes a single group.
func (c *Client) DeleteGroup(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/groups/"+id, nil, nil, nil, "Failed to delete group")
}

// DeleteGroups deletes each id in turn and partitions the outcomes; the API
// has no bulk endpoint for groups.
func (c *Client) DeleteGroups(ctx context.Context, ids []string) (*models.BulkDeleteResult, error) {
	result := &models.BulkDeleteResult{Failed: []string{}}
	for _, id := range ids {
		if err := c.DeleteGroup(ctx, id); err != nil {
			result.FailedCount++
			result.Failed = append(result.Failed, id)
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}
