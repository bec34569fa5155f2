package controller

import (
	"context"

	"github.com/fairsplit-admin/internal/adapter"
	"github.com/fairsplit-admin/internal/models"
)

// NewGroupsController builds the groups list: server-side sorting plus the
// client-side archival filter applied to the already-paginated page.
func NewGroupsController(api *adapter.Client) *ListController[models.Group] {
	return NewListController(ListConfig[models.Group]{
		Fetch: func(ctx context.Context, q Query) (*ResultPage[models.Group], error) {
			page, err := api.ListGroups(ctx, adapter.GroupListParams{
				ListParams: adapter.ListParams{Page: q.Page, Limit: q.Limit, Search: q.Search},
				SortBy:     q.SortBy,
				SortOrder:  q.SortOrder,
			})
			if err != nil {
				return nil, err
			}
			return &ResultPage[models.Group]{Items: page.Groups, Pagination: page.Pagination}, nil
		},
		Update: func(ctx context.Context, id string, fields map[string]string) error {
			return api.UpdateGroupStatus(ctx, id, fields["status"])
		},
		Delete: api.DeleteGroups,
		ID:     func(g models.Group) string { return g.ID },

		Visible: func(q Query, groups []models.Group) []models.Group {
			if q.Status == StatusAll || q.Status == "" {
				return groups
			}
			filtered := make([]models.Group, 0, len(groups))
			for _, group := range groups {
				if q.Status == models.GroupArchived && group.IsArchived {
					filtered = append(filtered, group)
				}
				if q.Status == models.GroupActive && !group.IsArchived {
					filtered = append(filtered, group)
				}
			}
			return filtered
		},

		Required:         []string{"status"},
		DefaultSortBy:    "createdAt",
		DefaultSortOrder: SortDesc,
	})
}

// NewGroupDetailController builds the group detail view.
func NewGroupDetailController(api *adapter.Client) *DetailController[models.Group] {
	return NewDetailController(api.GetGroup)
}
