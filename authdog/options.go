package authdog

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	httpClient *http.Client
	logger     zerolog.Logger
}

// WithHTTPClient uses the given HTTP client instead of building one.
// The client is copied; the user agent is still applied to its transport
// and ClientConfig.Timeout, when set, overrides its timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}
