package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/deaduz/eduadmin/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "eduadmin/1.0"
)

// TokenSource supplies the current bearer token, when one is held.
// The session implements it.
type TokenSource interface {
	Token() (string, bool)
}

// Client implements domain.ContentRepository, domain.InterestRepository,
// domain.DashboardRepository, and domain.AuthRepository against the
// platform REST API.
type Client struct {
	baseURL        string
	tokens         TokenSource
	onUnauthorized func()
	httpClient     *http.Client
	logger         *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the transport timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithUnauthorizedHook registers a callback fired whenever the backend
// answers 401. The session layer hooks its teardown here so a rejected
// token forces re-authentication exactly once per failure, with no
// retry.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// NewClient creates a new API client rooted at baseURL.
func NewClient(baseURL string, tokens TokenSource, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doJSON performs an authenticated request with an optional JSON body
// and decodes the JSON response into out (when out is non-nil).
func (c *Client) doJSON(ctx context.Context, op, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(op, req, out)
}

// formField is one text field of a multipart body. Fields are ordered
// so request encoding is deterministic.
type formField struct {
	name  string
	value string
}

// formFile is one binary part of a multipart body.
type formFile struct {
	name   string
	upload *domain.Upload
}

// doMultipart performs an authenticated multipart request. Payloads
// carrying a binary asset (course picture, interest icon) go through
// here; everything else is JSON. Callers never see the difference.
func (c *Client) doMultipart(ctx context.Context, op, method, path string, fields []formField, files []formFile, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return fmt.Errorf("%s: encode form field %s: %w", op, f.name, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.name, f.upload.Filename)
		if err != nil {
			return fmt.Errorf("%s: encode form file %s: %w", op, f.name, err)
		}
		if _, err := io.Copy(part, f.upload.Content); err != nil {
			return fmt.Errorf("%s: read upload %s: %w", op, f.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%s: finalize form: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(op, req, out)
}

// send attaches the session headers, executes the request, and maps
// the response onto the error taxonomy.
func (c *Client) send(op string, req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.logger.Debug("api request", "op", op, "method", req.Method, "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "op", op, "error", err)
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.TransportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	if err := c.checkStatus(op, resp.StatusCode, body); err != nil {
		return err
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error("api response parse error", "op", op, "error", err, "bodyLen", len(body))
		return fmt.Errorf("%s: parse response: %w", op, err)
	}
	return nil
}

func (c *Client) checkStatus(op string, status int, body []byte) error {
	switch {
	case status < 400:
		return nil
	case status == http.StatusUnauthorized:
		c.logger.Warn("api request unauthorized", "op", op)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("%s: %w", op, domain.ErrUnauthorized)
	case status == http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return &domain.ValidationError{Entity: op, Fields: fieldViolations(body, status)}
	default:
		c.logger.Error("api request error", "op", op, "status", status, "body", string(body))
		return &domain.TransportError{Op: op, Err: fmt.Errorf("unexpected status %d: %s", status, errorMessage(body, status))}
	}
}

// fieldViolations extracts per-field errors from a rejection body. The
// backend emits either a Mongoose-style map ({"errors":{"title":
// {"message":...}}}) or a validator array ({"errors":[{"path":...,
// "msg":...}]}); anything else collapses into a single payload-level
// violation carrying the body's message.
func fieldViolations(body []byte, status int) []domain.FieldViolation {
	var payload struct {
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Errors) > 0 {
		var byField map[string]struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(payload.Errors, &byField); err == nil && len(byField) > 0 {
			names := make([]string, 0, len(byField))
			for name := range byField {
				names = append(names, name)
			}
			sort.Strings(names)
			out := make([]domain.FieldViolation, 0, len(names))
			for _, name := range names {
				out = append(out, domain.FieldViolation{Field: name, Message: byField[name].Message})
			}
			return out
		}

		var list []struct {
			Field   string `json:"field"`
			Path    string `json:"path"`
			Param   string `json:"param"`
			Msg     string `json:"msg"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(payload.Errors, &list); err == nil && len(list) > 0 {
			out := make([]domain.FieldViolation, 0, len(list))
			for _, e := range list {
				field := e.Field
				if field == "" {
					field = e.Path
				}
				if field == "" {
					field = e.Param
				}
				msg := e.Message
				if msg == "" {
					msg = e.Msg
				}
				out = append(out, domain.FieldViolation{Field: field, Message: msg})
			}
			return out
		}
	}
	return []domain.FieldViolation{{Field: "payload", Message: errorMessage(body, status)}}
}

// errorMessage pulls the backend's message field out of an error body.
func errorMessage(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return http.StatusText(status)
}
