package authdog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Version is the SDK version reported in the User-Agent header
const Version = "0.1.0"

// UserAgent is sent with every request
const UserAgent = "authdog-go-sdk/" + Version

const userInfoPath = "/v1/userinfo"

// Provider error messages that are surfaced verbatim on HTTP 500
const (
	errGraphQLQueryFailed = "GraphQL query failed"
	errFetchUserInfo      = "Failed to fetch user info"
)

// ClientConfig holds configuration for the Authdog client
type ClientConfig struct {
	// BaseURL of the Authdog API. A trailing slash is ignored.
	BaseURL string
	// APIKey is an optional static credential. When set it replaces the
	// access token in the Authorization header.
	APIKey string
	// Timeout for the whole request. Zero keeps the transport default.
	Timeout time.Duration
}

// Client represents an Authdog API client. It is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

var _ UserInfoAPI = (*Client)(nil)

// NewClient creates a new Authdog client. No network I/O is performed.
func NewClient(config ClientConfig, opts ...Option) (*Client, error) {
	options := clientOptions{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	baseURL := strings.TrimRight(config.BaseURL, "/")
	if _, err := url.Parse(baseURL + userInfoPath); err != nil {
		return nil, newError(KindAuthdog, err, "Failed to create HTTP client: %v", err)
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     config.APIKey,
		httpClient: newHTTPClient(options.httpClient, config.Timeout),
		logger:     options.logger,
	}, nil
}

// newHTTPClient copies base (or starts from a zero client) and installs the
// user agent transport and the configured timeout
func newHTTPClient(base *http.Client, timeout time.Duration) *http.Client {
	client := &http.Client{}
	if base != nil {
		*client = *base
	}
	next := client.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	client.Transport = &userAgentTransport{next: next, userAgent: UserAgent}
	if timeout > 0 {
		client.Timeout = timeout
	}
	return client
}

// userAgentTransport sets a fixed User-Agent on every outgoing request
type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(req)
}

// GetUserInfo retrieves user information using an access token
func (c *Client) GetUserInfo(ctx context.Context, accessToken string) (*UserInfoResponse, error) {
	endpoint := c.baseURL + userInfoPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, newError(KindAuthdog, err, "Request failed: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	// A configured API key takes precedence over the per-call token
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", endpoint).
		Bool("api_key", c.apiKey != "").
		Msg("Making Authdog API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newError(KindAuthdog, err, "Request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(KindAuthdog, err, "Failed to read response body: %v", err)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Received Authdog API response")

	return parseResponse(resp.StatusCode, body)
}

// parseResponse maps a status code and body to a result or a typed error
func parseResponse(status int, body []byte) (*UserInfoResponse, error) {
	switch status {
	case http.StatusOK:
		var userInfo UserInfoResponse
		if err := json.Unmarshal(body, &userInfo); err != nil {
			return nil, newError(KindAuthdog, err, "Failed to parse response: %v", err)
		}
		return &userInfo, nil
	case http.StatusUnauthorized:
		return nil, newError(KindAuthentication, nil, "Unauthorized - invalid or expired token")
	case http.StatusInternalServerError:
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err == nil {
			switch errorResp.Error {
			case errGraphQLQueryFailed, errFetchUserInfo:
				return nil, newError(KindAPI, nil, "%s", errorResp.Error)
			}
		}
		return nil, httpError(status, body)
	default:
		return nil, httpError(status, body)
	}
}

func httpError(status int, body []byte) *Error {
	return newError(KindAPI, nil, "HTTP error %d: %s", status, string(body))
}

// String describes the client without exposing credentials
func (c *Client) String() string {
	return fmt.Sprintf("authdog.Client{baseURL: %q, apiKey: %t}", c.baseURL, c.apiKey != "")
}
