package memos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ErrMemoNotFound is returned when the Memos API answers 404.
var ErrMemoNotFound = errors.New("memo not found")

// Client is the HTTP wrapper for the Memos REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new Memos HTTP client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{},
	}
}

// CreateMemo creates a new memo via POST /api/v1/memos.
func (c *Client) CreateMemo(ctx context.Context, req CreateMemoRequest) (*Memo, error) {
	var memo Memo
	if err := c.do(ctx, http.MethodPost, "/api/v1/memos", req, &memo); err != nil {
		return nil, fmt.Errorf("memos create: %w", err)
	}
	return &memo, nil
}

// GetMemo fetches a single memo by its UID.
func (c *Client) GetMemo(ctx context.Context, uid string) (*Memo, error) {
	var memo Memo
	if err := c.do(ctx, http.MethodGet, "/api/v1/memos/"+url.PathEscape(uid), nil, &memo); err != nil {
		return nil, fmt.Errorf("memos get: %w", err)
	}
	return &memo, nil
}

// UpdateMemo patches a memo via PATCH /api/v1/memos/{uid}.
func (c *Client) UpdateMemo(ctx context.Context, uid string, req UpdateMemoRequest) (*Memo, error) {
	path := "/api/v1/memos/" + url.PathEscape(uid)
	if req.UpdateMask != "" {
		path += "?updateMask=" + url.QueryEscape(req.UpdateMask)
	}
	var memo Memo
	if err := c.do(ctx, http.MethodPatch, path, req, &memo); err != nil {
		return nil, fmt.Errorf("memos update: %w", err)
	}
	return &memo, nil
}

// ListMemos fetches one page of memos with an optional tag filter. An empty
// pageToken requests the first page; the returned token is empty on the last page.
func (c *Client) ListMemos(ctx context.Context, tag string, pageSize int, pageToken string) ([]Memo, string, error) {
	q := url.Values{}
	q.Set("pageSize", fmt.Sprint(pageSize))
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}
	if tag != "" {
		q.Set("filter", fmt.Sprintf("tag='%s'", tag))
	}

	var listResp struct {
		Memos         []Memo `json:"memos"`
		NextPageToken string `json:"nextPageToken"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/memos?"+q.Encode(), nil, &listResp); err != nil {
		return nil, "", fmt.Errorf("memos list: %w", err)
	}
	return listResp.Memos, listResp.NextPageToken, nil
}

// DeleteMemo removes a memo via DELETE /api/v1/memos/{uid}.
func (c *Client) DeleteMemo(ctx context.Context, uid string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/v1/memos/"+url.PathEscape(uid), nil, nil); err != nil {
		return fmt.Errorf("memos delete: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call memos API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrMemoNotFound
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("memos API error %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode memos response: %w", err)
	}
	return nil
}

// ---- Request/Response types scoped to this package ----

// CreateMemoRequest is the body for POST /api/v1/memos.
type CreateMemoRequest struct {
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

// UpdateMemoRequest is the body for PATCH /api/v1/memos/{uid}.
type UpdateMemoRequest struct {
	Content    string `json:"content"`
	UpdateMask string `json:"-"`
}

// Memo is the Memos API memo object.
type Memo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	UID        string `json:"uid"`
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
	CreateTime string `json:"createTime"`
	UpdateTime string `json:"updateTime"`
}
