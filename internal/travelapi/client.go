package travelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/yookve/api/internal/model"
)

// ErrUnavailable is returned when the external travel API cannot be
// reached or answers with an unexpected status.
var ErrUnavailable = errors.New("travel API unavailable")

// Job statuses, normalized from upstream variants
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Observer receives call outcomes, satisfied by the metrics collector
type Observer interface {
	ObserveTravelAPI(operation, outcome string)
}

// Config holds client settings
type Config struct {
	BaseURL  string
	Username string
	Password string
	TokenTTL time.Duration
	Timeout  time.Duration
}

// Client talks to the external travel search API. Authentication uses
// short-lived bearer tokens cached for a local TTL; the upstream expiry
// is not echoed back so the TTL is an approximation.
type Client struct {
	baseURL  string
	username string
	password string
	tokenTTL time.Duration
	http     *http.Client
	observer Observer

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// Package is the external API's package shape
type Package struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Destination string  `json:"destination"`
	ImageURL    string  `json:"imageUrl"`
	Price       float64 `json:"price"`
	Rating      string  `json:"rating"`
	Duration    string  `json:"duration"`
}

// SearchResponse is the response to a preference submission
type SearchResponse struct {
	JobID    string    `json:"job_id"`
	Status   string    `json:"status"`
	Packages []Package `json:"packages"`
}

// JobResult is the outcome of a search job
type JobResult struct {
	JobID    string    `json:"job_id"`
	Status   string    `json:"status"`
	Message  string    `json:"message"`
	Packages []Package `json:"packages"`
}

// ItineraryDay is a single day of a generated itinerary
type ItineraryDay struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
}

// Itinerary is a day-by-day plan derived from a search job
type Itinerary struct {
	JobID  string         `json:"job_id"`
	Status string         `json:"status"`
	Days   []ItineraryDay `json:"days"`
}

// NewClient creates a travel API client
func NewClient(cfg Config, observer Observer) *Client {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 30 * time.Minute
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		tokenTTL: cfg.TokenTTL,
		http:     &http.Client{Timeout: cfg.Timeout},
		observer: observer,
	}
}

// Enabled reports whether a base URL is configured
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

func (c *Client) observe(operation, outcome string) {
	if c.observer != nil {
		c.observer.ObserveTravelAPI(operation, outcome)
	}
}

// getToken returns a cached token or authenticates for a fresh one
func (c *Client) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("username", c.username)
	form.Set("password", c.password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/auth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe("auth", "error")
		slog.Error("travel API auth failed", slog.Any("error", err))
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.observe("auth", "error")
		return "", fmt.Errorf("%w: token endpoint returned %d", ErrUnavailable, resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		c.observe("auth", "error")
		return "", fmt.Errorf("%w: invalid token response", ErrUnavailable)
	}
	if tokenResp.AccessToken == "" {
		c.observe("auth", "error")
		return "", fmt.Errorf("%w: empty access token", ErrUnavailable)
	}

	c.observe("auth", "success")
	c.token = tokenResp.AccessToken
	c.tokenExpiry = time.Now().Add(c.tokenTTL)
	return c.token, nil
}

// SubmitPreferences sends a preference to the external search API.
// The upstream schema requires every interest and transport flag to be
// present, so missing fields are filled with false.
func (c *Client) SubmitPreferences(ctx context.Context, pref *model.Preference) (*SearchResponse, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, err
	}

	payload := buildSearchPayload(pref)
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe("search", "error")
		slog.Error("travel API search failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.observe("search", "error")
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		slog.Error("travel API search rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(raw)),
		)
		return nil, fmt.Errorf("%w: search endpoint returned %d", ErrUnavailable, resp.StatusCode)
	}

	var searchResp SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		c.observe("search", "error")
		return nil, fmt.Errorf("%w: invalid search response", ErrUnavailable)
	}

	c.observe("search", "success")
	searchResp.Status = normalizeStatus(searchResp.Status)
	return &searchResp, nil
}

// JobResult fetches the result of a search job. A 404 or 202 means the
// job is still processing, not an error.
func (c *Client) JobResult(ctx context.Context, jobID string) (*JobResult, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/api/search/%s/result", c.baseURL, url.PathEscape(jobID)), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build result request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe("result", "error")
		slog.Error("travel API result fetch failed",
			slog.String("job_id", jobID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusAccepted {
		c.observe("result", "processing")
		return &JobResult{
			JobID:   jobID,
			Status:  StatusProcessing,
			Message: "Elaborazione in corso, riprova più tardi",
		}, nil
	}

	if resp.StatusCode != http.StatusOK {
		c.observe("result", "error")
		return nil, fmt.Errorf("%w: result endpoint returned %d", ErrUnavailable, resp.StatusCode)
	}

	var result JobResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.observe("result", "error")
		return nil, fmt.Errorf("%w: invalid result response", ErrUnavailable)
	}

	c.observe("result", "success")
	result.JobID = jobID
	result.Status = normalizeStatus(result.Status)
	if result.Status == "" {
		result.Status = StatusCompleted
	}
	return &result, nil
}

// Itinerary fetches a day-by-day itinerary for a completed job. When
// the itinerary endpoint is missing upstream, one is derived from the
// flat job result instead.
func (c *Client) Itinerary(ctx context.Context, jobID string) (*Itinerary, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/api/search/%s/itinerary", c.baseURL, url.PathEscape(jobID)), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build itinerary request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe("itinerary", "error")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusOK {
		var itinerary Itinerary
		if err := json.NewDecoder(resp.Body).Decode(&itinerary); err != nil {
			c.observe("itinerary", "error")
			return nil, fmt.Errorf("%w: invalid itinerary response", ErrUnavailable)
		}
		c.observe("itinerary", "success")
		itinerary.JobID = jobID
		itinerary.Status = normalizeStatus(itinerary.Status)
		return &itinerary, nil
	}

	// Fall back to deriving an itinerary from the flat result
	result, err := c.JobResult(ctx, jobID)
	if err != nil {
		return nil, err
	}

	c.observe("itinerary", "derived")
	return deriveItinerary(result), nil
}

// deriveItinerary builds a simple one-day-per-package plan
func deriveItinerary(result *JobResult) *Itinerary {
	itinerary := &Itinerary{
		JobID:  result.JobID,
		Status: result.Status,
	}
	for i, pkg := range result.Packages {
		itinerary.Days = append(itinerary.Days, ItineraryDay{
			Day:         i + 1,
			Title:       pkg.Title,
			Description: pkg.Description,
			Activities:  []string{pkg.Destination},
		})
	}
	return itinerary
}

// normalizeStatus maps upstream status variants onto the canonical set
func normalizeStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "pending", "queued", "accepted":
		return StatusPending
	case "processing", "running", "in_progress":
		return StatusProcessing
	case "completed", "complete", "success", "done":
		return StatusCompleted
	case "failed", "error":
		return StatusFailed
	case "":
		return ""
	default:
		// Unrecognized states are treated as terminal so callers fall
		// back to local matching instead of polling forever.
		return StatusFailed
	}
}
