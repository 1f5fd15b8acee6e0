package services

import (
	"context"
	"errors"
	"sort"

	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/domain"
)

// fakeTaskRepo is an in-memory ports.TaskRepository.
type fakeTaskRepo struct {
	tasks     map[string]*domain.Task
	createErr error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*domain.Task)}
}

func (f *fakeTaskRepo) Create(_ context.Context, task *domain.Task) error {
	if f.createErr != nil {
		return f.createErr
	}
	copied := *task
	f.tasks[task.ID] = &copied
	return nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id string) (*domain.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *task
	return &copied, nil
}

func (f *fakeTaskRepo) GetAll(_ context.Context) ([]domain.Task, error) {
	out := make([]domain.Task, 0, len(f.tasks))
	for _, t := range f.tasks {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, task *domain.Task) error {
	if _, ok := f.tasks[task.ID]; !ok {
		return errors.New("record not found")
	}
	copied := *task
	f.tasks[task.ID] = &copied
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id string) error {
	delete(f.tasks, id)
	return nil
}

// fakeEventLog records appended events and serves canned read results.
type fakeEventLog struct {
	events  []domain.LogEvent
	entries []map[string]interface{}
	raw     string
	rawErr  error
}

func (f *fakeEventLog) Append(event domain.LogEvent) {
	f.events = append(f.events, event)
}

func (f *fakeEventLog) Read() ([]map[string]interface{}, error) {
	if f.entries == nil {
		return []map[string]interface{}{}, nil
	}
	return f.entries, nil
}

func (f *fakeEventLog) ReadRaw() (string, error) {
	return f.raw, f.rawErr
}

// fakeCompleter returns a canned response and records the last request.
type fakeCompleter struct {
	response string
	err      error
	calls    int
	lastReq  ports.CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req ports.CompletionRequest) (string, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}
