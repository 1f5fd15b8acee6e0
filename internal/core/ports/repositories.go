package ports

import (
	"context"

	"github.com/taskpilot/backend/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// GetAll returns every task ordered by creation time, newest first.
	GetAll(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
}

// EventLog is the append-only analytics log. Append is best-effort: failures
// are logged by the implementation and never surfaced, so a log write can
// never fail the task mutation that triggered it.
type EventLog interface {
	Append(event domain.LogEvent)
	// Read parses the log line by line, dropping malformed lines. A missing
	// file yields an empty slice, not an error.
	Read() ([]map[string]interface{}, error)
	// ReadRaw returns the raw JSONL content. A missing file yields "".
	ReadRaw() (string, error)
}
