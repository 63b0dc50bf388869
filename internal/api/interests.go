package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/deaduz/eduadmin/internal/domain"
)

// The public /interests endpoint serves only active entries; the admin
// endpoint returns the whole catalog. Both feed separate cache keys.

func (c *Client) ListInterests(ctx context.Context) ([]domain.Interest, error) {
	var dtos []interestDTO
	if err := c.doJSON(ctx, "list interests", http.MethodGet, "/admin/interests", nil, &dtos); err != nil {
		return nil, err
	}
	return mapInterests(dtos), nil
}

func (c *Client) ListActiveInterests(ctx context.Context) ([]domain.Interest, error) {
	var dtos []interestDTO
	if err := c.doJSON(ctx, "list active interests", http.MethodGet, "/interests", nil, &dtos); err != nil {
		return nil, err
	}
	return mapInterests(dtos), nil
}

func (c *Client) GetInterest(ctx context.Context, id string) (*domain.Interest, error) {
	var dto interestDTO
	if err := c.doJSON(ctx, "get interest", http.MethodGet, "/interests/"+id, nil, &dto); err != nil {
		return nil, err
	}
	interest := mapInterest(dto)
	return &interest, nil
}

func (c *Client) CreateInterest(ctx context.Context, payload domain.CreateInterest) (*domain.Interest, error) {
	fields := []formField{
		{"name", payload.Name},
		{"description", payload.Description},
		{"isActive", strconv.FormatBool(payload.IsActive)},
	}
	var files []formFile
	if payload.Icon.Upload != nil {
		files = append(files, formFile{"icon", payload.Icon.Upload})
	} else {
		fields = append(fields, formField{"icon", payload.Icon.Symbol})
	}

	var dto interestDTO
	if err := c.doMultipart(ctx, "create interest", http.MethodPost, "/admin/interests", fields, files, &dto); err != nil {
		return nil, err
	}
	interest := mapInterest(dto)
	return &interest, nil
}

func (c *Client) UpdateInterest(ctx context.Context, id string, payload domain.UpdateInterest) (*domain.Interest, error) {
	var fields []formField
	if payload.Name != nil {
		fields = append(fields, formField{"name", *payload.Name})
	}
	if payload.Description != nil {
		fields = append(fields, formField{"description", *payload.Description})
	}
	if payload.IsActive != nil {
		fields = append(fields, formField{"isActive", strconv.FormatBool(*payload.IsActive)})
	}
	var files []formFile
	if payload.Icon != nil {
		if payload.Icon.Upload != nil {
			files = append(files, formFile{"icon", payload.Icon.Upload})
		} else {
			fields = append(fields, formField{"icon", payload.Icon.Symbol})
		}
	}

	var dto interestDTO
	if err := c.doMultipart(ctx, "update interest", http.MethodPut, "/admin/interests/"+id, fields, files, &dto); err != nil {
		return nil, err
	}
	interest := mapInterest(dto)
	return &interest, nil
}

func (c *Client) DeleteInterest(ctx context.Context, id string) error {
	return c.doJSON(ctx, "delete interest", http.MethodDelete, "/admin/interests/"+id, nil, nil)
}
