package history

import (
	"time"

	"github.com/guregu/null/v6"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Entry is one recorded request. Checksum is set only for uploads and
// ErrorMessage only for failed calls.
type Entry struct {
	ID           int64
	RequestID    string
	Method       string
	URL          string
	Outcome      string
	DurationMs   int64
	Checksum     null.String
	ErrorMessage null.String
	CreatedAt    time.Time
}
