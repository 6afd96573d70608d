// Package apiclient is the Go client for the recipe blog API.
// It owns the client side of the session: it stores the token handed
// back by register/login, attaches it to every request, and drops it
// the moment the server rejects it.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"recipeblog-backend/internal/domains/blog/model"
	"recipeblog-backend/internal/domains/user"
)

var (
	// ErrSessionExpired means the stored token was rejected by the
	// server. The client has already cleared it; the caller must log
	// in again.
	ErrSessionExpired = errors.New("session expired, please log in again")

	// ErrNotLoggedIn means a protected call was attempted with no
	// stored session
	ErrNotLoggedIn = errors.New("not logged in")
)

// APIError is a non-401 error envelope returned by the server
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// envelope mirrors the server's response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *envelopeError  `json:"error,omitempty"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// =====================================================
// CLIENT
// =====================================================

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
}

// New builds a client against baseURL, e.g. "http://localhost:8080".
// A nil store defaults to an in-memory session.
func New(baseURL string, tokens TokenStore) *Client {
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
	}
}

// LoggedIn reports whether a session token is currently stored
func (c *Client) LoggedIn() bool {
	token, err := c.tokens.Load()
	return err == nil && token != ""
}

// Logout discards the stored session token
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

// =====================================================
// REQUEST PLUMBING
// =====================================================

// do performs one API call. When auth is set, the stored token rides
// along as a bearer header; a 401 reply clears the stored token and
// surfaces ErrSessionExpired so the caller knows to re-authenticate.
func (c *Client) do(ctx context.Context, method, path string, auth bool, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if auth {
		token, err := c.tokens.Load()
		if err != nil {
			return fmt.Errorf("failed to load session token: %w", err)
		}
		if token == "" {
			return ErrNotLoggedIn
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if auth && resp.StatusCode == http.StatusUnauthorized {
		// The server no longer accepts this token. Drop it so the
		// next call fails fast with ErrNotLoggedIn instead of
		// hammering the server.
		if clearErr := c.tokens.Clear(); clearErr != nil {
			return fmt.Errorf("session rejected and token cleanup failed: %w", clearErr)
		}
		return ErrSessionExpired
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

// =====================================================
// AUTH OPERATIONS
// =====================================================

// Register creates an account and stores the returned session token
func (c *Client) Register(ctx context.Context, req user.RegisterRequest) (*user.UserDTO, error) {
	var resp user.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/users/register", false, req, &resp); err != nil {
		return nil, err
	}
	if err := c.tokens.Save(resp.Token); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}
	return &resp.User, nil
}

// Login authenticates and stores the returned session token,
// replacing any previous session
func (c *Client) Login(ctx context.Context, email, password string) (*user.UserDTO, error) {
	req := user.LoginRequest{Email: email, Password: password}

	var resp user.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/users/login", false, req, &resp); err != nil {
		return nil, err
	}
	if err := c.tokens.Save(resp.Token); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}
	return &resp.User, nil
}

// Me returns the authenticated user's profile
func (c *Client) Me(ctx context.Context) (*user.UserDTO, error) {
	var dto user.UserDTO
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/me", true, nil, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// UpdateProfile updates the authenticated user's profile fields
func (c *Client) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (*user.UserDTO, error) {
	var dto user.UserDTO
	if err := c.do(ctx, http.MethodPut, "/api/v1/users/me", true, req, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// =====================================================
// BLOG OPERATIONS
// =====================================================

// ListBlogs returns the public listing, optionally filtered by author
func (c *Client) ListBlogs(ctx context.Context, author *uuid.UUID) (*model.ListBlogsResponse, error) {
	path := "/api/v1/blogs"
	if author != nil {
		path += "?author=" + url.QueryEscape(author.String())
	}

	var resp model.ListBlogsResponse
	if err := c.do(ctx, http.MethodGet, path, false, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MyBlogs returns the authenticated user's own posts
func (c *Client) MyBlogs(ctx context.Context) (*model.ListBlogsResponse, error) {
	var resp model.ListBlogsResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/blogs/my-blogs", true, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetBlog returns a single post
func (c *Client) GetBlog(ctx context.Context, id uuid.UUID) (*model.BlogResponse, error) {
	var resp model.BlogResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/blogs/"+id.String(), false, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateBlog creates a post owned by the authenticated user
func (c *Client) CreateBlog(ctx context.Context, req model.CreateBlogRequest) (*model.BlogResponse, error) {
	var resp model.BlogResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/blogs", true, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateBlog applies a partial update to an owned post
func (c *Client) UpdateBlog(ctx context.Context, id uuid.UUID, req model.UpdateBlogRequest) (*model.BlogResponse, error) {
	var resp model.BlogResponse
	if err := c.do(ctx, http.MethodPut, "/api/v1/blogs/"+id.String(), true, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteBlog removes an owned post
func (c *Client) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/blogs/"+id.String(), true, nil, nil)
}
