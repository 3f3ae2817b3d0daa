package feedhttp

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
	"strconv"
	"strings"
	"time"

	"github.com/bnema/feedkeeper/internal/domain"
	"github.com/bnema/feedkeeper/internal/ports"
)

const (
	defaultUserAgent   = "feedkeeper"
	defaultHTTPTimeout = 30 * time.Second
	defaultTimelineLen = 20
	defaultSearchLimit = 20

	// maxResponseBytes bounds how much of a response body is read.
	maxResponseBytes = 1 << 20
)

// Config holds the settings for a feed API client.
type Config struct {
	// BaseURL is the feed API origin, e.g. "https://feed.example.com".
	BaseURL string

	// HTTPClient is the underlying transport. A copy is taken so the
	// session cookie jar never leaks into the caller's client.
	HTTPClient *http.Client

	// UserAgent overrides the default request identification.
	UserAgent string

	// Logger receives request diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client talks to the feed API over HTTP and keeps the session cookies
// it is handed (or earns through login) in an internal jar.
type Client struct {
	baseURL    string
	host       string
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
	jar        *cookieJar
}

var _ ports.Feed = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("feed base url is empty")
	}

	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse feed base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported feed base url scheme %q", parsed.Scheme)
	}

	httpClient := &http.Client{Timeout: defaultHTTPTimeout}
	if cfg.HTTPClient != nil {
		clientCopy := *cfg.HTTPClient
		httpClient = &clientCopy
	}

	jar := newCookieJar()
	httpClient.Jar = jar

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		host:       parsed.Hostname(),
		httpClient: httpClient,
		userAgent:  userAgent,
		logger:     logger,
		jar:        jar,
	}, nil
}

// Login establishes a fresh session. The session cookies land in the jar
// via the Set-Cookie headers of the response.
func (c *Client) Login(ctx context.Context, handle, password, contact string) error {
	if strings.TrimSpace(handle) == "" {
		return errors.New("login handle is empty")
	}

	payload := map[string]string{
		"handle":   handle,
		"password": password,
		"contact":  contact,
	}
	if _, err := c.doRequest(ctx, http.MethodPost, "/api/v1/session", nil, payload); err != nil {
		return fmt.Errorf("login %s: %w", handle, err)
	}

	c.logger.Info("feed session established", "handle", handle)

	return nil
}

// SessionActive checks whether the current cookies still carry a live
// session. A 401 means "no" rather than an error.
func (c *Client) SessionActive(ctx context.Context) (bool, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/v1/session/verify", nil, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return false, nil
		}

		return false, fmt.Errorf("verify session: %w", err)
	}

	var verification struct {
		Active bool `json:"active"`
	}
	if err := json.Unmarshal(body, &verification); err != nil {
		return false, fmt.Errorf("decode session verification: %w", err)
	}

	return verification.Active, nil
}

// Cookies snapshots the current session cookies. No network involved.
func (c *Client) Cookies(ctx context.Context) ([]domain.Cookie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return c.jar.Snapshot(), nil
}

// SetCookies replaces the session cookies with a previously captured set.
func (c *Client) SetCookies(ctx context.Context, cookies []domain.Cookie) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.jar.Restore(c.host, cookies)

	return nil
}

func (c *Client) Item(ctx context.Context, id domain.ItemID) (domain.Item, error) {
	if id == "" {
		return domain.Item{}, errors.New("item id is empty")
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/api/v1/items/"+url.PathEscape(string(id)), nil, nil)
	if err != nil {
		return domain.Item{}, fmt.Errorf("fetch item %s: %w", id, err)
	}

	var payload itemPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.Item{}, fmt.Errorf("decode item %s: %w", id, err)
	}

	item, err := payload.normalize()
	if err != nil {
		return domain.Item{}, fmt.Errorf("normalize item %s: %w", id, err)
	}

	return item, nil
}

func (c *Client) Timeline(ctx context.Context, count int, exclude []domain.ItemID) ([]domain.Item, error) {
	if count <= 0 {
		count = defaultTimelineLen
	}

	query := url.Values{}
	query.Set("count", strconv.Itoa(count))
	if len(exclude) > 0 {
		ids := make([]string, 0, len(exclude))
		for _, id := range exclude {
			ids = append(ids, string(id))
		}
		query.Set("exclude", strings.Join(ids, ","))
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/api/v1/timeline/home", query, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch timeline: %w", err)
	}

	var payload timelinePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode timeline: %w", err)
	}

	return normalizeItems(payload.Items, c.logger), nil
}

func (c *Client) Search(ctx context.Context, searchQuery string, limit int, mode ports.SearchMode, cursor string) (ports.SearchPage, error) {
	if strings.TrimSpace(searchQuery) == "" {
		return ports.SearchPage{}, errors.New("search query is empty")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if mode == "" {
		mode = ports.SearchLatest
	}

	query := url.Values{}
	query.Set("q", searchQuery)
	query.Set("limit", strconv.Itoa(limit))
	query.Set("mode", string(mode))
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/api/v1/search", query, nil)
	if err != nil {
		return ports.SearchPage{}, fmt.Errorf("search %q: %w", searchQuery, err)
	}

	var payload searchPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return ports.SearchPage{}, fmt.Errorf("decode search results: %w", err)
	}

	return ports.SearchPage{
		Items:      normalizeItems(payload.Items, c.logger),
		NextCursor: payload.NextCursor,
	}, nil
}

func (c *Client) ResolveUserID(ctx context.Context, handle string) (domain.UserID, error) {
	if strings.TrimSpace(handle) == "" {
		return "", errors.New("lookup handle is empty")
	}

	query := url.Values{}
	query.Set("handle", handle)

	body, err := c.doRequest(ctx, http.MethodGet, "/api/v1/users/lookup", query, nil)
	if err != nil {
		return "", fmt.Errorf("resolve user %s: %w", handle, err)
	}

	var lookup struct {
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal(body, &lookup); err != nil {
		return "", fmt.Errorf("decode user lookup: %w", err)
	}
	if lookup.UserID == "" {
		return "", fmt.Errorf("user id missing in lookup response for %s", handle)
	}

	return domain.UserID(lookup.UserID), nil
}

// doRequest performs one HTTP round trip and returns the response body.
// Non-2xx responses come back as *APIError, network failures as
// *TransportError; context cancellation passes through untouched.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, requestBody any) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("User-Agent", c.userAgent)
	request.Header.Set("Accept", "application/json")
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%s %s: %w", method, path, err)
		}

		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return body, nil
	}

	apiErr := &APIError{}
	if err := json.Unmarshal(body, apiErr); err != nil || (apiErr.Code == "" && apiErr.Message == "") {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	apiErr.StatusCode = response.StatusCode

	return nil, apiErr
}
