package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/aws/smithy-go/ptr"

	"github.com/beanbocchi/courier/config"
	"github.com/beanbocchi/courier/internal/history"
	"github.com/beanbocchi/courier/pkg/client"
)

// record appends the finished call to the local history database. History is
// best effort: a broken database never fails the command itself.
func record(method, rawURL string, call *client.Call, started time.Time, callErr error) {
	cfg := config.GetConfig()

	storage, err := history.Open(cfg.History.Path)
	if err != nil {
		slog.Warn("history unavailable", "error", err)
		return
	}
	defer storage.Close()

	params := history.CreateEntryParams{
		RequestID:  call.ID().String(),
		Method:     method,
		URL:        rawURL,
		Outcome:    history.OutcomeSuccess,
		DurationMs: time.Since(started).Milliseconds(),
	}
	if callErr != nil {
		params.Outcome = history.OutcomeError
		params.ErrorMessage = ptr.String(callErr.Error())
	}
	if checksum := call.Checksum(); checksum != "" {
		params.Checksum = ptr.String(checksum)
	}

	if err := storage.CreateEntry(context.Background(), params); err != nil {
		slog.Warn("failed to record history entry", "error", err)
	}
}
