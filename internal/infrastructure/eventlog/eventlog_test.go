package eventlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/taskpilot/backend/internal/domain"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
)

func newTestLog(t *testing.T) (*Log, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analytics.log")
	return New(path, logger.NewNop()).(*Log), path
}

func TestReadMissingFile(t *testing.T) {
	log, _ := newTestLog(t)

	entries, err := log.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty slice, got %v", entries)
	}

	if _, err := log.ReadRaw(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadRaw err = %v, want fs.ErrNotExist", err)
	}
}

func TestAppendAndRead(t *testing.T) {
	log, _ := newTestLog(t)

	log.Append(domain.LogEvent{Event: domain.EventTaskCreated, TaskID: "t1"})
	log.Append(domain.LogEvent{Event: domain.EventTaskCompleted, TaskID: "t1"})

	entries, err := log.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0]["event"] != "TASK_CREATED" || entries[1]["event"] != "TASK_COMPLETED" {
		t.Errorf("append order not preserved: %v", entries)
	}
	if entries[0]["timestamp"] == nil {
		t.Error("timestamp not stamped")
	}
}

func TestReadDropsMalformedLines(t *testing.T) {
	log, path := newTestLog(t)

	content := `{"event":"TASK_CREATED","taskId":"a"}` + "\n" +
		"{not json at all\n" +
		`{"event":"TASK_COMPLETED","taskId":"a"}` + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := log.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected malformed line to be dropped, got %d entries", len(entries))
	}
}

func TestConcurrentAppendsDoNotInterleave(t *testing.T) {
	log, path := newTestLog(t)

	const writers = 8
	const perWriter = 25

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				log.Append(domain.LogEvent{
					Event:  domain.EventTaskCreated,
					TaskID: fmt.Sprintf("writer-%d-event-%d", w, i),
					Details: map[string]interface{}{
						"payload": strings.Repeat("x", 200),
					},
				})
			}
		}(w)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != writers*perWriter {
		t.Fatalf("expected %d lines, got %d", writers*perWriter, len(lines))
	}
	for i, line := range lines {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("line %d is not valid JSON (interleaved write?): %v", i, err)
		}
	}
}

func TestAppendFailureIsSwallowed(t *testing.T) {
	// Point the log at a directory so every open fails.
	dir := t.TempDir()
	log := New(dir, logger.NewNop()).(*Log)

	// Must not panic; the caller never sees the failure.
	log.Append(domain.LogEvent{Event: domain.EventTaskCreated, TaskID: "t"})
}
