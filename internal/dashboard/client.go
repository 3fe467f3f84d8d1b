// Package dashboard implements the StudyTrack dashboard: a typed client for
// the backend API, pure in-memory filtering over fetched rows, and a small
// server-rendered UI.
package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/studytrack/api/internal/app/models/dto"
)

// Client is the HTTP client for the StudyTrack backend API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// apiError is raised when the backend answers with its error envelope
type apiError struct {
	Status int
	Detail string
}

func (e *apiError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var envelope dto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != nil {
		detail := envelope.Error.Message
		if envelope.Error.Details != nil {
			detail = fmt.Sprintf("%s (%v)", detail, envelope.Error.Details)
		}
		return &apiError{Status: resp.StatusCode, Detail: detail}
	}
	return &apiError{Status: resp.StatusCode}
}

// Students fetches the stored students
func (c *Client) Students(ctx context.Context) ([]dto.StudentResponse, error) {
	var out []dto.StudentResponse
	err := c.getJSON(ctx, "/students", nil, &out)
	return out, err
}

// Subjects fetches the stored subjects
func (c *Client) Subjects(ctx context.Context) ([]dto.SubjectResponse, error) {
	var out []dto.SubjectResponse
	err := c.getJSON(ctx, "/subjects", nil, &out)
	return out, err
}

// EnrichedSessions fetches sessions joined to display names, newest first
func (c *Client) EnrichedSessions(ctx context.Context, limit int) ([]dto.EnrichedSessionResponse, error) {
	query := url.Values{"limit": []string{strconv.Itoa(limit)}}
	var out []dto.EnrichedSessionResponse
	err := c.getJSON(ctx, "/sessions-enriched", query, &out)
	return out, err
}

// CreateSession records a new study session through the backend
func (c *Client) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	out := &dto.SessionResponse{}
	if err := c.postJSON(ctx, "/sessions", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// TimeBySubject fetches total minutes grouped by subject
func (c *Client) TimeBySubject(ctx context.Context) ([]dto.SubjectTimeResponse, error) {
	var out []dto.SubjectTimeResponse
	err := c.getJSON(ctx, "/analytics/time-by-subject", nil, &out)
	return out, err
}

// TimeByPeriod fetches total minutes grouped by period
func (c *Client) TimeByPeriod(ctx context.Context) ([]dto.PeriodTimeResponse, error) {
	var out []dto.PeriodTimeResponse
	err := c.getJSON(ctx, "/analytics/time-by-period", nil, &out)
	return out, err
}

// DifficultyBySubject fetches mean difficulty grouped by subject
func (c *Client) DifficultyBySubject(ctx context.Context) ([]dto.SubjectDifficultyResponse, error) {
	var out []dto.SubjectDifficultyResponse
	err := c.getJSON(ctx, "/analytics/difficulty-by-subject", nil, &out)
	return out, err
}

// TimeByStudent fetches total minutes grouped by student
func (c *Client) TimeByStudent(ctx context.Context) ([]dto.StudentTimeResponse, error) {
	var out []dto.StudentTimeResponse
	err := c.getJSON(ctx, "/analytics/time-by-student", nil, &out)
	return out, err
}
