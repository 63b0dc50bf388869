package api

import (
	"context"
	"net/http"

	"github.com/deaduz/eduadmin/internal/domain"
)

func (c *Client) ListQuestions(ctx context.Context, lessonID string) ([]domain.QuizQuestion, error) {
	var dtos []questionDTO
	if err := c.doJSON(ctx, "list questions", http.MethodGet, "/admin/lessons/"+lessonID+"/questions", nil, &dtos); err != nil {
		return nil, err
	}
	return mapQuestions(dtos), nil
}

func (c *Client) GetQuestion(ctx context.Context, id string) (*domain.QuizQuestion, error) {
	var dto questionDTO
	if err := c.doJSON(ctx, "get question", http.MethodGet, "/admin/questions/"+id, nil, &dto); err != nil {
		return nil, err
	}
	question := mapQuestion(dto)
	return &question, nil
}

func (c *Client) CreateQuestion(ctx context.Context, lessonID string, payload domain.CreateQuestion) (*domain.QuizQuestion, error) {
	req := createQuestionRequest{
		Question:           payload.Question,
		Options:            payload.Options,
		CorrectOptionIndex: payload.CorrectOptionIndex,
		Order:              payload.Order,
	}
	var dto questionDTO
	if err := c.doJSON(ctx, "create question", http.MethodPost, "/admin/lessons/"+lessonID+"/questions", req, &dto); err != nil {
		return nil, err
	}
	question := mapQuestion(dto)
	return &question, nil
}

func (c *Client) BulkCreateQuestions(ctx context.Context, lessonID string, payloads []domain.CreateQuestion) ([]domain.QuizQuestion, error) {
	req := bulkCreateQuestionsRequest{Questions: make([]createQuestionRequest, len(payloads))}
	for i, p := range payloads {
		req.Questions[i] = createQuestionRequest{
			Question:           p.Question,
			Options:            p.Options,
			CorrectOptionIndex: p.CorrectOptionIndex,
			Order:              p.Order,
		}
	}
	var resp bulkCreateQuestionsResponse
	if err := c.doJSON(ctx, "bulk create questions", http.MethodPost, "/admin/lessons/"+lessonID+"/questions/bulk", req, &resp); err != nil {
		return nil, err
	}
	c.logger.Debug("bulk created questions", "lessonID", lessonID, "count", resp.CreatedCount)
	return mapQuestions(resp.Questions), nil
}

func (c *Client) UpdateQuestion(ctx context.Context, id string, payload domain.UpdateQuestion) (*domain.QuizQuestion, error) {
	req := updateQuestionRequest{
		Question:           payload.Question,
		Options:            payload.Options,
		CorrectOptionIndex: payload.CorrectOptionIndex,
		Order:              payload.Order,
	}
	var dto questionDTO
	if err := c.doJSON(ctx, "update question", http.MethodPut, "/admin/questions/"+id, req, &dto); err != nil {
		return nil, err
	}
	question := mapQuestion(dto)
	return &question, nil
}

func (c *Client) DeleteQuestion(ctx context.Context, id string) error {
	return c.doJSON(ctx, "delete question", http.MethodDelete, "/admin/questions/"+id, nil, nil)
}
