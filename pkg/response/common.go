package response

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/beanbocchi/courier/internal/model"
)

// Object is a decoded JSON object. Servers are expected to answer with a
// string-keyed object; any other top-level JSON value is illegitimate.
type Object = map[string]any

// Decode parses body as JSON and requires the top-level value to be an
// object. Arrays and scalars are rejected with model.ErrIllegitimateResponse
// rather than surfaced as a partial result.
func Decode(body []byte) (Object, error) {
	var value any
	if err := sonic.Unmarshal(body, &value); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, model.ErrIllegitimateResponse
	}
	return obj, nil
}
