package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Client is the HTTP wrapper for the remote storage REST API.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	observer   Observer
}

// NewClient creates a new remote storage client. tokens may be nil for
// unauthenticated use (login and registration).
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Create issues POST {base}/{collection}/ and decodes the created record into out.
func (c *Client) Create(ctx context.Context, collection string, data, out any) error {
	return c.do(ctx, http.MethodPost, collection, collectionPath(collection), data, out)
}

// Read issues GET {base}/{collection}/ and decodes the list into out.
func (c *Client) Read(ctx context.Context, collection string, out any) error {
	return c.do(ctx, http.MethodGet, collection, collectionPath(collection), nil, out)
}

// Get issues GET {base}/{collection}/{id}/.
func (c *Client) Get(ctx context.Context, collection string, id int64, out any) error {
	return c.do(ctx, http.MethodGet, collection, recordPath(collection, id), nil, out)
}

// Update issues PUT {base}/{collection}/{id}/ with the full record.
func (c *Client) Update(ctx context.Context, collection string, id int64, data, out any) error {
	return c.do(ctx, http.MethodPut, collection, recordPath(collection, id), data, out)
}

// Patch issues PATCH {base}/{collection}/{id}/ with the changed fields only.
func (c *Client) Patch(ctx context.Context, collection string, id int64, data, out any) error {
	return c.do(ctx, http.MethodPatch, collection, recordPath(collection, id), data, out)
}

// Delete issues DELETE {base}/{collection}/{id}/.
func (c *Client) Delete(ctx context.Context, collection string, id int64) error {
	return c.do(ctx, http.MethodDelete, collection, recordPath(collection, id), nil, nil)
}

// Do issues an arbitrary request against {base}{path}. It is used to replay
// recorded operations whose method and path are already known.
func (c *Client) Do(ctx context.Context, method, collection, path string, data, out any) error {
	return c.do(ctx, method, collection, path, data, out)
}

func (c *Client) do(ctx context.Context, method, collection, path string, data, out any) (err error) {
	url := c.baseURL + path

	var body io.Reader
	if data != nil {
		raw, mErr := json.Marshal(data)
		if mErr != nil {
			return fmt.Errorf("failed to marshal %s %s request: %w", method, path, mErr)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if data != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			httpReq.Header.Set("Authorization", fmt.Sprintf("Token %s", token))
		}
	}

	start := time.Now()
	status := 0
	defer func() {
		if c.observer != nil {
			c.observer(method, collection, status, time.Since(start))
		}
	}()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call remote API %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read remote API %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       raw,
			Fields:     parseFields(raw),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode remote API %s %s response: %w", method, path, err)
	}
	return nil
}

// CollectionPath returns /{collection}/.
func CollectionPath(collection string) string {
	return collectionPath(collection)
}

// RecordPath returns /{collection}/{id}/.
func RecordPath(collection string, id int64) string {
	return recordPath(collection, id)
}

func collectionPath(collection string) string {
	return "/" + strings.Trim(collection, "/") + "/"
}

func recordPath(collection string, id int64) string {
	return collectionPath(collection) + strconv.FormatInt(id, 10) + "/"
}
