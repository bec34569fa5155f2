package adapter

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairsplit-admin/internal/admintest"
	"github.com/fairsplit-admin/internal/authstore"
	"github.com/fairsplit-admin/internal/gateway"
	"github.com/fairsplit-admin/internal/models"

	apperrors "github.com/fairsplit-admin/internal/errors"
)

// newTestClient wires a client and a signed-in gateway against the fake API.
func newTestClient(t *testing.T) (*Client, *admintest.Server) {
	t.Helper()

	fake := admintest.NewServer()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	store := authstore.New(authstore.NewMemoryKV())
	require.NoError(t, store.Save(context.Background(), &authstore.Credentials{
		AccessToken:  admintest.AccessToken,
		RefreshToken: admintest.RefreshToken,
	}))

	gw := gateway.New(store, gateway.Options{})
	return NewClient(srv.URL, gw), fake
}

func makeCategories(n int) []models.Category {
	categories := make([]models.Category, 0, n)
	for i := 1; i <= n; i++ {
		categories = append(categories, models.Category{
			ID:   fmt.Sprintf("cat-%d", i),
			Name: fmt.Sprintf("Food %d", i),
		})
	}
	return categories
}

func TestListCategoriesQueryParams(t *testing.T) {
	client, fake := newTestClient(t)
	fake.Categories = makeCategories(25)

	page, err := client.ListCategories(context.Background(), ListParams{Page: 2, Limit: 10, Search: "food"})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/admin/categories", fake.LastPath)
	assert.Equal(t, "2", fake.LastQuery.Get("page"))
	assert.Equal(t, "10", fake.LastQuery.Get("limit"))
	assert.Equal(t, "food", fake.LastQuery.Get("search"))

	assert.Len(t, page.Categories, 10)
	assert.Equal(t, 2, page.Pagination.Page)
	assert.Equal(t, 25, page.Pagination.TotalItems)
	assert.True(t, page.Pagination.Consistent())
}

func TestListUsersOmitsBlankSearch(t *testing.T) {
	client, fake := newTestClient(t)

	_, err := client.ListUsers(context.Background(), ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/admin/users/", fake.LastPath)
	_, present := fake.LastQuery["search"]
	assert.False(t, present, "a blank search must not appear in the query string")
}

func TestListGroupsAlwaysSendsSortParams(t *testing.T) {
	client, fake := newTestClient(t)

	_, err := client.ListGroups(context.Background(), GroupListParams{
		ListParams: ListParams{Page: 1, Limit: 10},
		SortBy:     "createdAt",
		SortOrder:  "desc",
	})
	require.NoError(t, err)

	assert.Equal(t, "createdAt", fake.LastQuery.Get("sortBy"))
	assert.Equal(t, "desc", fake.LastQuery.Get("sortOrder"))
}

func TestEmbeddedFailureBecomesAPIError(t *testing.T) {
	client, fake := newTestClient(t)
	fake.EmbeddedFailure = "database unavailable"

	_, err := client.ListCategories(context.Background(), ListParams{Page: 1, Limit: 10})
	require.Error(t, err)

	var apiErr *apperrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Status)
	assert.Equal(t, "database unavailable", apiErr.Message)
}

func TestGetUserUnwrapsDetailEnvelope(t *testing.T) {
	client, fake := newTestClient(t)
	fake.Users = []models.User{{ID: "u-1", Username: "alice", Email: "alice@example.com", Verify: models.VerifiedUser}}

	user, err := client.GetUser(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.IsVerified())
}

func TestGetUserNotFound(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.GetUser(context.Background(), "missing")
	var apiErr *apperrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestUpdateUserStatusPatchesVerify(t *testing.T) {
	client, fake := newTestClient(t)
	fake.Users = []models.User{{ID: "u-1", Verify: models.UnverifiedUser}}

	require.NoError(t, client.UpdateUserStatus(context.Background(), "u-1", models.VerifiedUser))

	assert.Equal(t, "/api/v1/admin/users/u-1/status", fake.LastPath)
	assert.JSONEq(t, `{"verify":"verified"}`, string(fake.LastBody))
	assert.Equal(t, models.VerifiedUser, fake.Users[0].Verify)
}

func TestDeleteUsersPartitionsOutcomes(t *testing.T) {
	client, fake := newTestClient(t)
	fake.Users = []models.User{{ID: "u-1"}, {ID: "u-2"}, {ID: "u-3"}}
	fake.FailDeleteIDs["u-2"] = true

	result, err := client.DeleteUsers(context.Background(), []string{"u-1", "u-2", "u-3"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailedCount)
	assert.Equal(t, []string{"u-2"}, result.Failed)
	assert.Len(t, fake.Users, 1)
}

func TestBulkDeleteCategoriesSendsCategoryIDs(t *testing.T) {
	client, fake := newTestClient(t)
	fake.Categories = makeCategories(3)
	fake.FailDeleteIDs["cat-3"] = true

	result, err := client.BulkDeleteCategories(context.Background(), []string{"cat-1", "cat-3"})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/admin/categories/bulk", fake.LastPath)
	assert.JSONEq(t, `{"categoryIds":["cat-1","cat-3"]}`, string(fake.LastBody))

	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.FailedCount)
	assert.Equal(t, []string{"cat-3"}, result.Failed)
}

func TestCreateCategoryReturnsNewID(t *testing.T) {
	client, fake := newTestClient(t)

	id, err := client.CreateCategory(context.Background(), "Travel", "Trips and transport")
	require.NoError(t, err)
	assert.Equal(t, "cat-1", id)
	require.Len(t, fake.Categories, 1)
	assert.Equal(t, "Travel", fake.Categories[0].Name)
}

func TestLoginReturnsCredentialsWithoutGateway(t *testing.T) {
	client, fake := newTestClient(t)
	// An unauthenticated login must not be counted as an authed request.
	before := fake.Requests

	creds, err := client.Login(context.Background(), "admin@fairsplit.test", "secret")
	require.NoError(t, err)

	assert.Equal(t, admintest.AccessToken, creds.AccessToken)
	assert.Equal(t, admintest.RefreshToken, creds.RefreshToken)
	require.NotNil(t, creds.Admin)
	assert.Equal(t, "admin@fairsplit.test", creds.Admin.Email)
	assert.Equal(t, before, fake.Requests)
}

func TestRecentActivitiesAndUsage(t *testing.T) {
	client, fake := newTestClient(t)
	fake.Usage = models.ProjectUsage{UserCount: 12, GroupCount: 3}
	fake.Activities = []models.Activity{{ID: "a-1", Action: models.ActionLogin}}

	usage, err := client.ProjectUsage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, usage.UserCount)

	activities, err := client.RecentActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, models.ActionLogin, activities[0].Action)
}
