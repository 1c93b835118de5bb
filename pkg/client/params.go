package client

import (
	"fmt"
	"net/url"

	"github.com/beanbocchi/courier/internal/model"
)

// Params holds request parameters. Values are stringified with fmt.Sprint
// before encoding, so numbers and booleans are accepted alongside strings.
type Params map[string]any

func (p Params) values() url.Values {
	if len(p) == 0 {
		return nil
	}
	v := url.Values{}
	for key, value := range p {
		v.Set(key, fmt.Sprint(value))
	}
	return v
}

// encode renders the params as application/x-www-form-urlencoded.
func (p Params) encode() string {
	return p.values().Encode()
}

// parseURL accepts only absolute URLs with a host. Rejections happen before
// any network I/O.
func parseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, model.ErrInvalidURL.Fmt(raw)
	}
	return u, nil
}
