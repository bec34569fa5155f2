package adapter

import (
	"context"
	"net/http"

	"github.com/fairsplit-admin/internal/models"
)

// ProjectUsage fetches the aggregate usage counters.
func (c *Client) ProjectUsage(ctx context.Context) (*models.ProjectUsage, error) {
	var usage models.ProjectUsage
	if err := c.call(ctx, http.MethodGet, "/project/usage", nil, nil, &usage, "Failed to fetch project usage"); err != nil {
		return nil, err
	}
	return &usage, nil
}

// RecentActivities fetches the admin activity log shown on the landing page.
func (c *Client) RecentActivities(ctx context.Context) ([]models.Activity, error) {
	var data struct {
		RecentActivities []models.Activity `json:"recentActivities"`
	}
	if err := c.call(ctx, http.MethodGet, "", nil, nil, &data, "Failed to fetch activities"); err != nil {
		return nil, err
	}
	return data.RecentActivities, nil
}
