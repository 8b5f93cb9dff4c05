package fakestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Catalog defines the remote operations the dashboard performs against the
// store API. This interface is implemented by *Client and can be used for
// testing.
type Catalog interface {
	List(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, draft Draft) (Product, error)
	Update(ctx context.Context, id int, draft Draft) (Product, error)
	Delete(ctx context.Context, id int) error
}

// Ensure Client implements Catalog at compile time.
var _ Catalog = (*Client)(nil)

// Client talks to a fakestoreapi-compatible HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the public fake store instance the original
	// dashboard was written against.
	DefaultBaseURL = "https://fakestoreapi.com"

	defaultUserAgent      = "shopfront/0.1"
	defaultRequestTimeout = 10 * time.Second
)

// NewClient builds a Client for the given base URL. An empty value uses
// DefaultBaseURL; a zero timeout uses the default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// List retrieves the full product collection.
func (c *Client) List(ctx context.Context) ([]Product, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &payload); err != nil {
		return nil, c.fail(OpList, err)
	}
	return payload, nil
}

// Create submits a new product draft. The server assigns the ID and echoes
// the full record back.
func (c *Client) Create(ctx context.Context, draft Draft) (Product, error) {
	if c == nil {
		return Product{}, fmt.Errorf("client is nil")
	}
	if err := draft.Validate(); err != nil {
		return Product{}, fmt.Errorf("invalid product: %w", err)
	}
	var payload Product
	if err := c.do(ctx, http.MethodPost, "/products", draft, &payload); err != nil {
		return Product{}, c.fail(OpCreate, err)
	}
	return payload, nil
}

// Update replaces the identified product's fields and returns the record as
// confirmed by the server.
func (c *Client) Update(ctx context.Context, id int, draft Draft) (Product, error) {
	if c == nil {
		return Product{}, fmt.Errorf("client is nil")
	}
	if err := draft.Validate(); err != nil {
		return Product{}, fmt.Errorf("invalid product: %w", err)
	}
	var payload Product
	if err := c.do(ctx, http.MethodPut, "/products/"+strconv.Itoa(id), draft, &payload); err != nil {
		return Product{}, c.fail(OpUpdate, err)
	}
	return payload, nil
}

// Delete removes the identified product server-side.
func (c *Client) Delete(ctx context.Context, id int) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if err := c.do(ctx, http.MethodDelete, "/products/"+strconv.Itoa(id), nil, nil); err != nil {
		return c.fail(OpDelete, err)
	}
	return nil
}

// fail logs the failure for diagnostics and wraps it with the operation
// kind. The client never retries; that policy belongs to callers.
func (c *Client) fail(op Op, err error) error {
	apiErr := &APIError{Op: op, Err: err}
	var se *statusError
	if errors.As(err, &se) {
		apiErr.Status = se.code
	}
	log.Printf("fakestore %s failed: %v", op, err)
	return apiErr
}

// statusError marks a non-2xx response so fail can surface the code.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Failure bodies are not parsed for details.
		return &statusError{code: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
