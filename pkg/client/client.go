package client

import (
	"log/slog"
	"net/http"
)

// Client dispatches HTTP requests and reports each outcome through a Call.
// It holds no per-request state, so a single Client may be shared by any
// number of concurrent calls.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Client. The default underlying *http.Client carries no
// timeout; use WithTimeout or WithHTTPClient to change transport behavior.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}
