package adapter

import (
	"context"
	"net/http"

	"github.com/fairsplit-admin/internal/models"
)

// CategoriesPage is one server-side page of categories.
type CategoriesPage struct {
	Categories []models.Category `json:"categories"`
	Pagination models.Pagination `json:"pagination"`
}

// ListCategories fetches one page of categories.
func (c *Client) ListCategories(ctx context.Context, params ListParams) (*CategoriesPage, error) {
	var page CategoriesPage
	if err := c.call(ctx, http.MethodGet, "/categories", params.values(), nil, &page, "Failed to fetch categories"); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateCategory creates a category and returns its identifier.
func (c *Client) CreateCategory(ctx context.Context, name, description string) (string, error) {
	payload := map[string]string{"name": name, "description": description}
	var data struct {
		ID string `json:"_id"`
	}
	if err := c.call(ctx, http.MethodPost, "/categories", nil, payload, &data, "Failed to create category"); err != nil {
		return "", err
	}
	return data.ID, nil
}

// UpdateCategory changes a category's name and description.
func (c *Client) UpdateCategory(ctx context.Context, id, name, description string) error {
	payload := map[string]string{"name": name, "description": description}
	return c.call(ctx, http.MethodPatch, "/categories/"+id, nil, payload, nil, "Failed to update category")
}

// BulkDeleteCategories deletes the given categories in one call. The server
// reports per-item outcomes; a partial failure is still a 200 with an embedded
// success status.
func (c *Client) BulkDeleteCategories(ctx context.Context, ids []string) (*models.BulkDeleteResult, error) {
	payload := map[string][]string{"categoryIds": ids}
	var result models.BulkDeleteResult
	if err := c.call(ctx, http.MethodDelete, "/categories/bulk", nil, payload, &result, "Failed to delete categories"); err != nil {
		return nil, err
	}
	if result.Failed == nil {
		result.Failed = []string{}
	}
	return &result, nil
}
