package api

import (
	"context"
	"net/http"

	"github.com/deaduz/eduadmin/internal/domain"
)

func (c *Client) ListLessons(ctx context.Context, sectionID string) ([]domain.Lesson, error) {
	var dtos []lessonDTO
	if err := c.doJSON(ctx, "list lessons", http.MethodGet, "/admin/sections/"+sectionID+"/lessons", nil, &dtos); err != nil {
		return nil, err
	}
	return mapLessons(dtos), nil
}

func (c *Client) GetLesson(ctx context.Context, id string) (*domain.Lesson, error) {
	var dto lessonDTO
	if err := c.doJSON(ctx, "get lesson", http.MethodGet, "/admin/lessons/"+id, nil, &dto); err != nil {
		return nil, err
	}
	lesson := mapLesson(dto)
	return &lesson, nil
}

func (c *Client) CreateLesson(ctx context.Context, payload domain.CreateLesson) (*domain.Lesson, error) {
	typ, videoURL, textContent, fileURL, fileName := lessonContentFields(payload.Content)
	req := createLessonRequest{
		Title:       payload.Title,
		Description: payload.Description,
		SectionID:   payload.SectionID,
		Type:        typ,
		Order:       payload.Order,
		VideoURL:    videoURL,
		TextContent: textContent,
		FileURL:     fileURL,
		FileName:    fileName,
	}
	var dto lessonDTO
	if err := c.doJSON(ctx, "create lesson", http.MethodPost, "/admin/lessons", req, &dto); err != nil {
		return nil, err
	}
	lesson := mapLesson(dto)
	return &lesson, nil
}

func (c *Client) UpdateLesson(ctx context.Context, id string, payload domain.UpdateLesson) (*domain.Lesson, error) {
	req := updateLessonRequest{
		Title:       payload.Title,
		Description: payload.Description,
		Order:       payload.Order,
	}
	if payload.Content != nil {
		// Send every content field so values belonging to the previous
		// lesson type are cleared rather than retained.
		typ, videoURL, textContent, fileURL, fileName := lessonContentFields(payload.Content)
		req.Type = &typ
		req.VideoURL = &videoURL
		req.TextContent = &textContent
		req.FileURL = &fileURL
		req.FileName = &fileName
	}
	var dto lessonDTO
	if err := c.doJSON(ctx, "update lesson", http.MethodPut, "/admin/lessons/"+id, req, &dto); err != nil {
		return nil, err
	}
	lesson := mapLesson(dto)
	return &lesson, nil
}

func (c *Client) DeleteLesson(ctx context.Context, id string) error {
	return c.doJSON(ctx, "delete lesson", http.MethodDelete, "/admin/lessons/"+id, nil, nil)
}
