// Package client talks to the ClickUp v2 API. It owns authentication,
// rate limiting and retries; the aggregation core only ever sees the
// already-fetched entry list it produces.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/pippsza/clickup/internal/logger"
	"github.com/pippsza/clickup/internal/model"
)

const (
	baseURL = "https://api.clickup.com/api/v2"

	// RequestsPerMinute stays far below ClickUp's documented limit.
	RequestsPerMinute = 100

	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second

	// RetryMaxAttempts caps attempts per request.
	RetryMaxAttempts = 3

	// RetryBackoff is the wait between attempts.
	RetryBackoff = 5 * time.Second
)

// Client is the HTTP client for the ClickUp API.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// NewClient creates a ClickUp client for the given personal token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
		limiter: rate.NewLimiter(rate.Every(time.Minute/RequestsPerMinute), 10),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetUser fetches the user owning the token.
func (c *Client) GetUser(ctx context.Context) (model.User, error) {
	var resp struct {
		User wireUser `json:"user"`
	}
	if err := c.getWithRetry(ctx, c.baseURL+"/user", &resp); err != nil {
		return model.User{}, fmt.Errorf("fetch user: %w", err)
	}
	return model.User{ID: resp.User.ID, Username: resp.User.Username, Email: resp.User.Email}, nil
}

// GetTeams fetches all workspaces visible to the token.
func (c *Client) GetTeams(ctx context.Context) ([]model.Team, error) {
	var resp struct {
		Teams []model.Team `json:"teams"`
	}
	if err := c.getWithRetry(ctx, c.baseURL+"/team", &resp); err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}
	return resp.Teams, nil
}

// EntriesResult is the outcome of a time-entry fetch. Dropped counts
// entries whose wire payload had an unparseable duration or start; they
// are excluded up front so the core never sees a malformed entry.
type EntriesResult struct {
	Entries []model.TimeEntry
	Dropped int
}

// GetTimeEntries fetches all time entries for one assignee within
// [startMs, endMs] on the given team.
func (c *Client) GetTimeEntries(ctx context.Context, teamID string, assignee int, startMs, endMs int64) (EntriesResult, error) {
	q := url.Values{}
	q.Set("start_date", fmt.Sprintf("%d", startMs))
	q.Set("end_date", fmt.Sprintf("%d", endMs))
	q.Set("assignee", fmt.Sprintf("%d", assignee))

	reqURL := fmt.Sprintf("%s/team/%s/time_entries?%s", c.baseURL, teamID, q.Encode())

	var resp struct {
		Data []wireEntry `json:"data"`
	}
	if err := c.getWithRetry(ctx, reqURL, &resp); err != nil {
		return EntriesResult{}, fmt.Errorf("fetch time entries: %w", err)
	}

	result := EntriesResult{Entries: make([]model.TimeEntry, 0, len(resp.Data))}
	for _, w := range resp.Data {
		entry, ok := w.toModel()
		if !ok {
			result.Dropped++
			continue
		}
		result.Entries = append(result.Entries, entry)
	}

	if result.Dropped > 0 {
		logger.Get(ctx).Warn().
			Int("dropped", result.Dropped).
			Int("kept", len(result.Entries)).
			Msg("Dropped malformed time entries")
	}

	logger.Get(ctx).Info().
		Str("team_id", teamID).
		Int("entries", len(result.Entries)).
		Msg("Time entries fetched")

	return result, nil
}

// getWithRetry executes a GET with retry and backoff. Authorization and
// not-found failures are final; rate limits and transient errors retry.
func (c *Client) getWithRetry(ctx context.Context, url string, result any) error {
	var lastErr error

	for attempt := 1; attempt <= RetryMaxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		err := c.doGet(ctx, url, result)
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return err
		}
		if errors.Is(err, model.ErrUnauthorized) || errors.Is(err, model.ErrNotFound) {
			return err
		}

		if attempt < RetryMaxAttempts {
			logger.Get(ctx).Warn().
				Str("url", url).
				Int("attempt", attempt).
				Int("max_attempts", RetryMaxAttempts).
				Err(err).
				Dur("backoff", RetryBackoff).
				Msg("Request failed, retrying")

			select {
			case <-time.After(RetryBackoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return lastErr
}

func (c *Client) doGet(ctx context.Context, url string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return model.ErrTimeout
		}
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return model.ErrRateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		return model.ErrUnauthorized
	case http.StatusNotFound:
		return model.ErrNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidResponse, err)
	}
	return nil
}
