package ports

import (
	"context"
	"time"

	"github.com/taskpilot/backend/internal/domain"
)

type CreateTaskInput struct {
	Title        string
	Description  *string
	Priority     domain.Priority
	TimeEstimate interface{}
	DueDate      *time.Time
}

// UpdateTaskInput carries a partial update. Nil pointers mean "not provided";
// the Clear flags distinguish an explicit null from an absent field.
type UpdateTaskInput struct {
	Title            *string
	Description      *string
	ClearDescription bool
	Priority         *domain.Priority
	Status           *domain.TaskStatus
	TimeEstimate     interface{}
	DueDate          *time.Time
	ClearDueDate     bool
	CompletedAt      *time.Time
	ClearCompletedAt bool
}

type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	GetTasks(ctx context.Context) ([]domain.Task, error)
	GetTaskByID(ctx context.Context, id string) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
	GetCalendarEvents(ctx context.Context) ([]domain.CalendarEvent, error)
}

// TaskSuggestion is the structured draft returned by the suggestion service.
type TaskSuggestion struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Priority     string  `json:"priority"`
	TimeEstimate float64 `json:"timeEstimate"`
	DueDate      *string `json:"dueDate"`
}

type SuggestionService interface {
	SuggestTask(ctx context.Context, userInput string) (*TaskSuggestion, error)
}

// ReportService analyzes the event log. The returned report is either the
// structured report object or a plain informational string when the log holds
// no data yet.
type ReportService interface {
	AnalyzeLogs(ctx context.Context) (interface{}, error)
}

type ChatService interface {
	Answer(ctx context.Context, question string) (string, error)
}

// CompletionRequest is a single chat-completions round trip. JSONMode asks
// the model to constrain its output to one JSON object.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	JSONMode     bool
	Temperature  float64
}

// Completer is the external text-generation model.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
