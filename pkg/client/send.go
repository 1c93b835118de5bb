package client

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/beanbocchi/courier/pkg/response"
)

// SendPost dispatches an HTTP POST with params form-encoded into the request
// body. The returned Call resolves to the decoded JSON object or an error; an
// unparsable URL fails the Call before any network I/O.
func (c *Client) SendPost(rawURL string, params Params) *Call {
	return c.send(http.MethodPost, rawURL, params)
}

// SendGet dispatches an HTTP GET with params encoded into the query string.
// Contract otherwise identical to SendPost.
func (c *Client) SendGet(rawURL string, params Params) *Call {
	return c.send(http.MethodGet, rawURL, params)
}

func (c *Client) send(method, rawURL string, params Params) *Call {
	call := newCall()

	target, err := parseURL(rawURL)
	if err != nil {
		call.finish(nil, err)
		return call
	}

	c.logger.Debug("dispatching request", "id", call.id, "method", method, "url", target.String())

	go func() {
		call.finish(c.do(call.id, method, target, params))
	}()

	return call
}

func (c *Client) do(id uuid.UUID, method string, target *url.URL, params Params) (response.Object, error) {
	var body io.Reader
	contentType := ""

	if method == http.MethodGet {
		if values := params.values(); values != nil {
			q := target.Query()
			for key, vs := range values {
				for _, v := range vs {
					q.Set(key, v)
				}
			}
			target.RawQuery = q.Encode()
		}
	} else if encoded := params.encode(); encoded != "" {
		body = strings.NewReader(encoded)
		contentType = "application/x-www-form-urlencoded"
	}

	req, err := http.NewRequest(method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("request failed with status code: %d", resp.StatusCode)
	}

	result, err := response.Decode(raw)
	if err != nil {
		c.logger.Debug("request failed", "id", id, "error", err)
		return nil, err
	}

	c.logger.Debug("request completed", "id", id, "status", resp.StatusCode)
	return result, nil
}
