package accountsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// APIError is a non-2xx response from the accounts service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("accounts api: %d %s", e.StatusCode, e.Message)
}

// Client is a minimal HTTP client for the accounts service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Authorize exchanges an email/secret pair for a bearer session.
func (c *Client) Authorize(ctx context.Context, clientID, clientSecret string) (Session, error) {
	var sess Session
	err := c.do(ctx, http.MethodPost, "/v1/accounts/authorize", "",
		AuthorizeRequest{ClientID: clientID, ClientSecret: clientSecret}, &sess)
	return sess, err
}

// Revalidate redeems a refresh token for a new session. The presented token
// is consumed either way; keep the one from the returned session.
func (c *Client) Revalidate(ctx context.Context, refreshToken string) (Session, error) {
	var sess Session
	err := c.do(ctx, http.MethodPost, "/v1/accounts/revalidate", "",
		RevalidateRequest{RefreshToken: refreshToken}, &sess)
	return sess, err
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	var created RegisterResponse
	err := c.do(ctx, http.MethodPost, "/v1/accounts/register", "", req, &created)
	return created, err
}

// Users lists all accounts. Requires a valid access token.
func (c *Client) Users(ctx context.Context, accessToken string) ([]User, error) {
	var users []User
	err := c.do(ctx, http.MethodGet, "/v1/users", accessToken, nil, &users)
	return users, err
}

// User fetches a single account by id. Requires a valid access token.
func (c *Client) User(ctx context.Context, accessToken, id string) (User, error) {
	var user User
	err := c.do(ctx, http.MethodGet, "/v1/users/"+id, accessToken, nil, &user)
	return user, err
}

// Livez checks the service liveness probe.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var health HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", "", nil, &health)
	return health, err
}

func (c *Client) do(ctx context.Context, method, path, bearer string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
