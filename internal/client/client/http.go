package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/addressbook/internal/client/models"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "https://dummyjson.com").
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api url %q: scheme must be http or https", baseURL)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type usersResponse struct {
	Users []jsoniter.RawMessage `json:"users"`
	Total int                   `json:"total"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, err
	}

	var u models.User
	if err := c.do(ctx, http.MethodPost, "/auth/login", bytes.NewReader(body), &u); err != nil {
		return nil, err
	}
	if u.ID == 0 && u.Username == "" {
		return nil, ErrNoData
	}
	return &u, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, page Page) ([]jsoniter.RawMessage, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(page.Limit))
	q.Set("skip", strconv.Itoa(page.Skip))
	if page.Select != "" {
		q.Set("select", page.Select)
	}

	var resp usersResponse
	if err := c.do(ctx, http.MethodGet, "/users?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Users == nil {
		return nil, ErrNoData
	}
	return resp.Users, nil
}

// Ping asks for a single id-only user, the cheapest call the API offers.
func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.ListUsers(ctx, Page{Limit: 1, Select: "id"})
	return err
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		_ = json.Unmarshal(data, &e)
		return &APIError{Status: resp.StatusCode, Message: e.Message}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
