package eventlog

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/domain"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
)

// Log is the append-only JSONL analytics log. One process owns the file;
// a mutex serializes appends so concurrent requests never interleave lines.
type Log struct {
	path string
	log  *logger.Logger
	mu   sync.Mutex
}

func New(path string, log *logger.Logger) ports.EventLog {
	return &Log{path: path, log: log}
}

// Append writes one event as a single JSON line. Failures are logged and
// swallowed: the log is analytics-only and must never fail the mutation that
// produced the event.
func (l *Log) Append(event domain.LogEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	line, err := json.Marshal(event)
	if err != nil {
		l.log.Errorw("event_log_marshal_failed", "event", event.Event, "error", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		l.log.Errorw("event_log_open_failed", "path", l.path, "error", err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		l.log.Errorw("event_log_append_failed", "path", l.path, "error", err)
	}
}

// ReadRaw returns the whole file content. A missing file surfaces as an
// fs.ErrNotExist so callers can tell "never logged" from "empty".
func (l *Log) ReadRaw() (string, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Read parses the log line by line. Malformed lines are dropped, a missing
// file yields an empty slice.
func (l *Log) Read() ([]map[string]interface{}, error) {
	content, err := l.ReadRaw()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []map[string]interface{}{}, nil
		}
		return nil, err
	}

	entries := []map[string]interface{}{}
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			l.log.Warnw("event_log_line_skipped", "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
