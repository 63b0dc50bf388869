package api

import (
	"context"
	"net/http"

	"github.com/deaduz/eduadmin/internal/domain"
)

func (c *Client) GetDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	var dto dashboardDTO
	if err := c.doJSON(ctx, "get dashboard", http.MethodGet, "/admin/dashboard", nil, &dto); err != nil {
		return nil, err
	}
	return mapDashboard(dto), nil
}
