package controller

import (
	"context"

	"github.com/fairsplit-admin/internal/adapter"
	"github.com/fairsplit-admin/internal/models"
)

// NewUsersController builds the users list. Users cannot be created from the
// console; the only mutation besides delete is the verification status flip,
// wired through the generic update path.
func NewUsersController(api *adapter.Client) *ListController[models.User] {
	return NewListController(ListConfig[models.User]{
		Fetch: func(ctx context.Context, q Query) (*ResultPage[models.User], error) {
			page, err := api.ListUsers(ctx, adapter.ListParams{Page: q.Page, Limit: q.Limit, Search: q.Search})
			if err != nil {
				return nil, err
			}
			return &ResultPage[models.User]{Items: page.Users, Pagination: page.Pagination}, nil
		},
		Update: func(ctx context.Context, id string, fields map[string]string) error {
			return api.UpdateUserStatus(ctx, id, fields["verify"])
		},
		Delete: api.DeleteUsers,
		ID:     func(u models.User) string { return u.ID },

		Required: []string{"verify"},
	})
}

// NewUserDetailController builds the user detail view.
func NewUserDetailController(api *adapter.Client) *DetailController[models.User] {
	return NewDetailController(api.GetUser)
}
