package api

import (
	"context"
	"net/http"

	"github.com/deaduz/eduadmin/internal/domain"
)

// Course payloads carry an optional picture upload, so create and
// update always go over multipart; the backend expects form fields
// even when no file is attached.

func (c *Client) ListCourses(ctx context.Context) ([]domain.Course, error) {
	var dtos []courseDTO
	if err := c.doJSON(ctx, "list courses", http.MethodGet, "/courses", nil, &dtos); err != nil {
		return nil, err
	}
	return mapCourses(dtos), nil
}

func (c *Client) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	var dto courseDTO
	if err := c.doJSON(ctx, "get course", http.MethodGet, "/courses/"+id, nil, &dto); err != nil {
		return nil, err
	}
	course := mapCourse(dto)
	return &course, nil
}

func (c *Client) CreateCourse(ctx context.Context, payload domain.CreateCourse) (*domain.Course, error) {
	fields := []formField{
		{"title", payload.Title},
		{"description", payload.Description},
		{"duration", payload.Duration},
		{"level", string(payload.Level)},
	}
	var files []formFile
	if payload.Picture != nil {
		files = append(files, formFile{"picture", payload.Picture})
	}

	var dto courseDTO
	if err := c.doMultipart(ctx, "create course", http.MethodPost, "/courses", fields, files, &dto); err != nil {
		return nil, err
	}
	course := mapCourse(dto)
	return &course, nil
}

func (c *Client) UpdateCourse(ctx context.Context, id string, payload domain.UpdateCourse) (*domain.Course, error) {
	var fields []formField
	if payload.Title != nil {
		fields = append(fields, formField{"title", *payload.Title})
	}
	if payload.Description != nil {
		fields = append(fields, formField{"description", *payload.Description})
	}
	if payload.Duration != nil {
		fields = append(fields, formField{"duration", *payload.Duration})
	}
	if payload.Level != nil {
		fields = append(fields, formField{"level", string(*payload.Level)})
	}
	var files []formFile
	if payload.Picture != nil {
		files = append(files, formFile{"picture", payload.Picture})
	}

	var dto courseDTO
	if err := c.doMultipart(ctx, "update course", http.MethodPut, "/courses/"+id, fields, files, &dto); err != nil {
		return nil, err
	}
	course := mapCourse(dto)
	return &course, nil
}

func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return c.doJSON(ctx, "delete course", http.MethodDelete, "/courses/"+id, nil, nil)
}
