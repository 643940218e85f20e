// Package client is a typed Go facade over the CV API. It mirrors the
// HTTP surface one-to-one: public reads need no token, mutations send
// the bearer token obtained from Login.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Sentinel errors recognizable with errors.Is regardless of the exact
// server message.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError carries the status and envelope message of a failed call.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" && e.Detail != e.Message {
		return fmt.Sprintf("api: %d %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	}
	return false
}

// Client talks to one API deployment. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

// WithHTTPClient replaces the default transport, mainly for tests and
// custom timeouts.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken preloads a bearer token, skipping Login.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken swaps the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token, empty when anonymous.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login exchanges credentials for a bearer token and stores it on the
// client.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.AccessToken)
	return &out, nil
}

// envelope matches the server's response format.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   any             `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return fmt.Errorf("decode response (%d): %w", resp.StatusCode, err)
		}
	}

	if resp.StatusCode >= 400 || !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: env.Message}
		if detail, ok := env.Error.(string); ok {
			apiErr.Detail = detail
		}
		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// ResourceService exposes the five standard operations of one list
// resource. Create and Update accept any JSON-encodable payload so
// callers can send partial patches.
type ResourceService[T any] struct {
	c    *Client
	path string
}

func (s ResourceService[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := s.c.do(ctx, http.MethodGet, s.path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s ResourceService[T]) Get(ctx context.Context, id string) (*T, error) {
	var out T
	if err := s.c.do(ctx, http.MethodGet, s.path+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s ResourceService[T]) Create(ctx context.Context, in any) (*T, error) {
	var out T
	if err := s.c.do(ctx, http.MethodPost, s.path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s ResourceService[T]) Update(ctx context.Context, id string, in any) (*T, error) {
	var out T
	if err := s.c.do(ctx, http.MethodPut, s.path+"/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the record and returns its last representation.
func (s ResourceService[T]) Delete(ctx context.Context, id string) (*T, error) {
	var out T
	if err := s.c.do(ctx, http.MethodDelete, s.path+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Experiences() ResourceService[Experience] {
	return ResourceService[Experience]{c: c, path: "/api/experience"}
}

func (c *Client) Projects() ResourceService[Project] {
	return ResourceService[Project]{c: c, path: "/api/projects"}
}

func (c *Client) Skills() ResourceService[Skill] {
	return ResourceService[Skill]{c: c, path: "/api/skills"}
}

func (c *Client) TechStack() ResourceService[TechStack] {
	return ResourceService[TechStack]{c: c, path: "/api/tech-stack"}
}

func (c *Client) References() ResourceService[Reference] {
	return ResourceService[Reference]{c: c, path: "/api/references"}
}

// ProfileService covers the singleton profile, which has no :id in its
// routes.
type ProfileService struct {
	c *Client
}

func (c *Client) Profile() ProfileService { return ProfileService{c: c} }

func (s ProfileService) Get(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := s.c.do(ctx, http.MethodGet, "/api/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s ProfileService) Create(ctx context.Context, in any) (*Profile, error) {
	var out Profile
	if err := s.c.do(ctx, http.MethodPost, "/api/profile", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update sends a partial patch; the server creates the profile when
// none exists yet.
func (s ProfileService) Update(ctx context.Context, in any) (*Profile, error) {
	var out Profile
	if err := s.c.do(ctx, http.MethodPut, "/api/profile", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s ProfileService) Delete(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := s.c.do(ctx, http.MethodDelete, "/api/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
