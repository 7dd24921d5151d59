package api

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

	"github.com/google/uuid"

	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
)

// HTTPClient is the net/http implementation of Client. One instance is
// created at startup from config; the embedded http.Client enforces the
// fixed request timeout, which is the only bound on how long a call waits.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a gateway for the account service at baseURL.
// timeout applies to every request; zero falls back to 20 seconds.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// rejection is the shape of the service's non-2xx response bodies.
type rejection struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// send issues one request and decodes the JSON response into out (when out
// is non-nil). The Authorization header is attached only when token is
// non-empty. Query parameters are percent-encoded by url.Values.
func (c *HTTPClient) send(ctx context.Context, method, path string, query url.Values, body any, token string, out any) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, payload)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeRejection(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
		return nil
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// decodeRejection turns a non-2xx response into an *Error. Bodies that are
// not the expected {code,message} JSON still produce an *Error carrying
// the status and the raw text.
func decodeRejection(resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode}
	}

	var rej rejection
	if err := json.Unmarshal(data, &rej); err != nil || (rej.Code == "" && rej.Message == "") {
		return &Error{Status: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}
	return &Error{Status: resp.StatusCode, Code: rej.Code, Message: rej.Message}
}

// Login exchanges credentials for a bearer token via POST /login.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.send(ctx, http.MethodPost, "/login", nil, body, "", &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates a new account via POST /user.
func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	return c.send(ctx, http.MethodPost, "/user", nil, req, "", nil)
}

// FetchUser returns the authenticated user's profile via GET /user.
func (c *HTTPClient) FetchUser(ctx context.Context, token string) (models.User, error) {
	var user models.User
	if err := c.send(ctx, http.MethodGet, "/user", nil, nil, token, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateUser patches the authenticated user's profile via PATCH /user.
func (c *HTTPClient) UpdateUser(ctx context.Context, token string, req UpdateUserRequest) error {
	return c.send(ctx, http.MethodPatch, "/user", nil, req, token, nil)
}

// DeleteUser removes the authenticated user's account via DELETE /user.
func (c *HTTPClient) DeleteUser(ctx context.Context, token string) error {
	return c.send(ctx, http.MethodDelete, "/user", nil, struct{}{}, token, nil)
}

// ListUsers returns every user via GET /users.
func (c *HTTPClient) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	if err := c.send(ctx, http.MethodGet, "/users", nil, nil, token, &users); err != nil {
		return nil, err
	}
	return users, nil
}
