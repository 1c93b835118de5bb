package model

import "fmt"

type ErrorWithCode interface {
	Error() string
	Code() int
}

// Error is a failure with a domain label and a numeric code, matching the
// outcome shape the facade reports to callers.
type Error struct {
	ErrDomain string `json:"domain"`
	ErrCode   int    `json:"code"`
	Message   string `json:"message"`
}

func (e Error) Error() string {
	return e.Message
}

func (e Error) Code() int {
	return e.ErrCode
}

func (e Error) Domain() string {
	return e.ErrDomain
}

// Fmt creates a new error from the base error template with provided arguments
func (e Error) Fmt(args ...any) Error {
	return Error{
		ErrDomain: e.ErrDomain,
		ErrCode:   e.ErrCode,
		Message:   fmt.Sprintf(e.Message, args...),
	}
}

func NewError(domain string, code int, message string) Error {
	return Error{
		ErrDomain: domain,
		ErrCode:   code,
		Message:   message,
	}
}

var (
	ErrInvalidURL           = NewError("Invalid URL", 404, "invalid url: %q")
	ErrIllegitimateResponse = NewError("Results returned by server illegitimate", 1, "response body is not a JSON object")
	ErrRequestEncoding      = NewError("Request Encoding", 2, "failed to encode request body: %s")
	ErrValidation           = NewError("Validation", 422, "validation error: %s")
)
