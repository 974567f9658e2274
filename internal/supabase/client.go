package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/faustyna77/Automation-Energy-Sales/internal/config"
	"github.com/faustyna77/Automation-Energy-Sales/internal/models"
)

// UpstreamError is a non-success answer from Supabase. The gateway relays
// StatusCode and Body to its own caller untouched, so both are kept raw.
type UpstreamError struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("supabase returned %d: %s", e.StatusCode, e.Body)
}

// Client talks to a single Supabase project: the auth API for signup and
// password logins, and the PostgREST endpoints for the decisions and
// uploads tables. It never retries; every failure goes straight back to
// the caller.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(cfg config.SupabaseConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SignUp registers a new user and returns the raw auth API response.
func (c *Client) SignUp(ctx context.Context, creds models.Credentials) ([]byte, error) {
	return c.do(ctx, http.MethodPost, "/auth/v1/signup", creds, false, http.StatusOK)
}

// SignIn exchanges email and password for a token pair.
func (c *Client) SignIn(ctx context.Context, creds models.Credentials) ([]byte, error) {
	return c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", creds, false, http.StatusOK)
}

// InsertDecision stores one journal entry for the record's user.
func (c *Client) InsertDecision(ctx context.Context, record models.DecisionRecord) error {
	_, err := c.do(ctx, http.MethodPost, "/rest/v1/decisions", record, true, http.StatusCreated)
	return err
}

// ListDecisions returns the raw decision rows for the user, newest first.
func (c *Client) ListDecisions(ctx context.Context, userID string) ([]byte, error) {
	path := fmt.Sprintf("/rest/v1/decisions?user_id=eq.%s&order=timestamp.desc", url.QueryEscape(userID))
	return c.do(ctx, http.MethodGet, path, nil, true, http.StatusOK)
}

// InsertUpload stores one imported data file for the record's user.
func (c *Client) InsertUpload(ctx context.Context, record models.UploadRecord) error {
	_, err := c.do(ctx, http.MethodPost, "/rest/v1/uploads", record, true, http.StatusCreated)
	return err
}

// ListUploads returns the raw upload rows for the user, newest first.
func (c *Client) ListUploads(ctx context.Context, userID string) ([]byte, error) {
	path := fmt.Sprintf("/rest/v1/uploads?user_id=eq.%s&order=uploaded_at.desc", url.QueryEscape(userID))
	return c.do(ctx, http.MethodGet, path, nil, true, http.StatusOK)
}

// do performs one upstream call. The auth API wants only the apikey
// header; PostgREST additionally wants the key as a bearer token. Any
// status other than wantStatus comes back as *UpstreamError.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}, serviceAuth bool, wantStatus int) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding supabase payload: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building supabase request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	if serviceAuth {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling supabase: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading supabase response: %w", err)
	}

	if resp.StatusCode != wantStatus {
		return nil, &UpstreamError{
			StatusCode:  resp.StatusCode,
			ContentType: resp.Header.Get("Content-Type"),
			Body:        body,
		}
	}

	return body, nil
}
