package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"portfolio_content/internal/domain"
)

const (
	DefaultBaseURL = "https://api.notion.com"
	DefaultVersion = "2022-06-28"

	// CategoryProperty is the select property that tags each record with its page section.
	CategoryProperty = "PageType"
)

// Config holds Notion client configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	DatabaseID     string
	Version        string
	PageSize       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Query selects the records of one category, optionally sorted.
type Query struct {
	Category domain.Category
	Sorts    []Sort
}

// APIError is a non-2xx response from the Notion API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("notion api: status %d: %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("notion api: unexpected status: %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return domain.ErrFetchFailed
}

func (e *APIError) retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// Client queries a single Notion database.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	databaseID     string
	version        string
	pageSize       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new Notion client.
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		databaseID:     cfg.DatabaseID,
		version:        cfg.Version,
		pageSize:       cfg.PageSize,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "notion"),
	}
}

// Query returns every page of the category, following pagination cursors.
func (c *Client) Query(ctx context.Context, q Query) ([]Page, error) {
	req := QueryRequest{
		Filter: &Filter{
			Property: CategoryProperty,
			Select:   &SelectCondition{Equals: string(q.Category)},
		},
		Sorts:    q.Sorts,
		PageSize: c.pageSize,
	}

	var pages []Page
	for {
		resp, err := c.queryPage(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", q.Category, err)
		}

		pages = append(pages, resp.Results...)

		c.logger.Debug("fetched page",
			"category", q.Category,
			"results", len(resp.Results),
			"total", len(pages),
		)

		if !resp.HasMore || resp.NextCursor == nil || *resp.NextCursor == "" {
			break
		}
		req.StartCursor = *resp.NextCursor
	}

	return pages, nil
}

func (c *Client) queryPage(ctx context.Context, body QueryRequest) (*QueryResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	var resp *QueryResponse
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		resp, err = c.doRequest(ctx, payload)
		if err == nil {
			return resp, nil
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) && !apiErr.retryable() {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, ctx.Err())
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, ctx.Err())
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) doRequest(ctx context.Context, payload []byte) (*QueryResponse, error) {
	url := fmt.Sprintf("%s/v1/databases/%s/query", c.baseURL, c.databaseID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %w", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp ErrorResponse
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		if json.Unmarshal(data, &errResp) == nil {
			apiErr.Code = errResp.Code
			apiErr.Message = errResp.Message
		}
		return nil, apiErr
	}

	var qr QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domain.ErrFetchFailed, err)
	}

	return &qr, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if c.maxBackoff > 0 && backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
