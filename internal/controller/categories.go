package controller

import (
	"context"

	"github.com/fairsplit-admin/internal/adapter"
	"github.com/fairsplit-admin/internal/models"
)

// NewCategoriesController builds the categories list, the only entity with a
// true bulk-delete endpoint; single deletes go through it as one-element calls.
func NewCategoriesController(api *adapter.Client) *ListController[models.Category] {
	return NewListController(ListConfig[models.Category]{
		Fetch: func(ctx context.Context, q Query) (*ResultPage[models.Category], error) {
			page, err := api.ListCategories(ctx, adapter.ListParams{Page: q.Page, Limit: q.Limit, Search: q.Search})
			if err != nil {
				return nil, err
			}
			return &ResultPage[models.Category]{Items: page.Categories, Pagination: page.Pagination}, nil
		},
		Create: func(ctx context.Context, fields map[string]string) error {
			_, err := api.CreateCategory(ctx, fields["name"], fields["description"])
			return err
		},
		Update: func(ctx context.Context, id string, fields map[string]string) error {
			return api.UpdateCategory(ctx, id, fields["name"], fields["description"])
		},
		Delete: api.BulkDeleteCategories,
		ID:     func(c models.Category) string { return c.ID },

		Required: []string{"name", "description"},
	})
}
