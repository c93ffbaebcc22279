package api

import (
	"context"

	"lifetrack/internal/models"
)

// DashboardStats fetches the aggregate counts for the landing view.
func (c *Client) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.do(ctx, "GET", "/stats/dashboard", nil, &stats); err != nil {
		return models.DashboardStats{}, wrapErr("dashboard stats", err)
	}
	return stats, nil
}
