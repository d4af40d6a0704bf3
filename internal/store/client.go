// Package store is the HTTP client for the collection store (the json-server
// style backend holding the vagas and usuarios collections).
//
// Contract: a failed transport or a non-2xx status is always returned as an
// error — callers must never mistake a failed fetch for an empty collection.
// Mutations are followed, by caller convention, with a full refetch of every
// dependent view; this client does no caching of its own.
package store

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
)

const (
	ColVagas    = "vagas"
	ColUsuarios = "usuarios"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient builds a store client. timeout = 0 keeps the legacy behavior of
// waiting indefinitely on an unresponsive store.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// StatusError is a non-2xx answer from the store.
type StatusError struct {
	Status int
	Method string
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("store: %s %s returned status %d", e.Method, e.URL, e.Status)
}

// IsNotFound reports whether err is a 404 from the store.
func IsNotFound(err error) bool {
	se, ok := err.(*StatusError)
	return ok && se.Status == http.StatusNotFound
}

// List fetches a collection, optionally narrowed by exact-match field filters
// (e.g. status=aprovada, email=<value>). An empty collection is a valid empty
// slice, not an error.
func (c *Client) List(ctx context.Context, collection string, filter url.Values) ([]Record, error) {
	u := c.BaseURL + "/" + collection
	if len(filter) > 0 {
		u += "?" + filter.Encode()
	}
	var out []Record
	if err := c.do(ctx, http.MethodGet, u, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Record{}
	}
	return out, nil
}

// Get fetches a single record; a missing id is an error (404).
func (c *Client) Get(ctx context.Context, collection string, id uint) (Record, error) {
	var out Record
	if err := c.do(ctx, http.MethodGet, c.itemURL(collection, id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create stores a new record. The store assigns the id and echoes the stored
// record back.
func (c *Client) Create(ctx context.Context, collection string, record any) (Record, error) {
	var out Record
	if err := c.do(ctx, http.MethodPost, c.BaseURL+"/"+collection, record, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Replace overwrites the whole record (PUT). The record must already exist.
func (c *Client) Replace(ctx context.Context, collection string, id uint, record any) (Record, error) {
	var out Record
	if err := c.do(ctx, http.MethodPut, c.itemURL(collection, id), record, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Patch merges only the named fields; everything else stays untouched.
func (c *Client) Patch(ctx context.Context, collection string, id uint, fields map[string]any) (Record, error) {
	var out Record
	if err := c.do(ctx, http.MethodPatch, c.itemURL(collection, id), fields, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the record. Confirmation is the caller's concern.
func (c *Client) Delete(ctx context.Context, collection string, id uint) error {
	return c.do(ctx, http.MethodDelete, c.itemURL(collection, id), nil, nil)
}

func (c *Client) itemURL(collection string, id uint) string {
	return fmt.Sprintf("%s/%s/%d", c.BaseURL, collection, id)
}

func (c *Client) do(ctx context.Context, method, u string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("store: marshal body: %w", err)
		}
		reader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("store: %s %s: %w", method, u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{Status: resp.StatusCode, Method: method, URL: u}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("store: read response: %w", err)
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("store: parse response: %w", err)
	}
	return nil
}
