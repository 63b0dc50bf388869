package api

import (
	"context"
	"net/http"

	"github.com/deaduz/eduadmin/internal/domain"
)

func (c *Client) ListSections(ctx context.Context, unitID string) ([]domain.Section, error) {
	var dtos []sectionDTO
	if err := c.doJSON(ctx, "list sections", http.MethodGet, "/admin/units/"+unitID+"/sections", nil, &dtos); err != nil {
		return nil, err
	}
	return mapSections(dtos), nil
}

func (c *Client) GetSection(ctx context.Context, id string) (*domain.Section, error) {
	var dto sectionDTO
	if err := c.doJSON(ctx, "get section", http.MethodGet, "/admin/sections/"+id, nil, &dto); err != nil {
		return nil, err
	}
	section := mapSection(dto)
	return &section, nil
}

func (c *Client) CreateSection(ctx context.Context, payload domain.CreateSection) (*domain.Section, error) {
	req := createSectionRequest{
		Title:       payload.Title,
		Description: payload.Description,
		UnitID:      payload.UnitID,
		Order:       payload.Order,
	}
	var dto sectionDTO
	if err := c.doJSON(ctx, "create section", http.MethodPost, "/admin/sections", req, &dto); err != nil {
		return nil, err
	}
	section := mapSection(dto)
	return &section, nil
}

func (c *Client) UpdateSection(ctx context.Context, id string, payload domain.UpdateSection) (*domain.Section, error) {
	req := updateSectionRequest{
		Title:       payload.Title,
		Description: payload.Description,
		Order:       payload.Order,
	}
	var dto sectionDTO
	if err := c.doJSON(ctx, "update section", http.MethodPut, "/admin/sections/"+id, req, &dto); err != nil {
		return nil, err
	}
	section := mapSection(dto)
	return &section, nil
}

func (c *Client) DeleteSection(ctx context.Context, id string) error {
	return c.doJSON(ctx, "delete section", http.MethodDelete, "/admin/sections/"+id, nil, nil)
}
