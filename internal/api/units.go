package api

import (
	"context"
	"net/http"

	"github.com/deaduz/eduadmin/internal/domain"
)

func (c *Client) ListUnits(ctx context.Context, courseID string) ([]domain.Unit, error) {
	var dtos []unitDTO
	if err := c.doJSON(ctx, "list units", http.MethodGet, "/admin/courses/"+courseID+"/units", nil, &dtos); err != nil {
		return nil, err
	}
	return mapUnits(dtos), nil
}

func (c *Client) GetUnit(ctx context.Context, id string) (*domain.Unit, error) {
	var dto unitDTO
	if err := c.doJSON(ctx, "get unit", http.MethodGet, "/admin/units/"+id, nil, &dto); err != nil {
		return nil, err
	}
	unit := mapUnit(dto)
	return &unit, nil
}

func (c *Client) CreateUnit(ctx context.Context, payload domain.CreateUnit) (*domain.Unit, error) {
	req := createUnitRequest{
		Title:       payload.Title,
		Description: payload.Description,
		CourseID:    payload.CourseID,
		Order:       payload.Order,
	}
	var dto unitDTO
	if err := c.doJSON(ctx, "create unit", http.MethodPost, "/admin/units", req, &dto); err != nil {
		return nil, err
	}
	unit := mapUnit(dto)
	return &unit, nil
}

func (c *Client) UpdateUnit(ctx context.Context, id string, payload domain.UpdateUnit) (*domain.Unit, error) {
	req := updateUnitRequest{
		Title:       payload.Title,
		Description: payload.Description,
		Order:       payload.Order,
	}
	var dto unitDTO
	if err := c.doJSON(ctx, "update unit", http.MethodPut, "/admin/units/"+id, req, &dto); err != nil {
		return nil, err
	}
	unit := mapUnit(dto)
	return &unit, nil
}

func (c *Client) DeleteUnit(ctx context.Context, id string) error {
	return c.doJSON(ctx, "delete unit", http.MethodDelete, "/admin/units/"+id, nil, nil)
}
