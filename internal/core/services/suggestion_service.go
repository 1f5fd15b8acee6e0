package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/domain"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
)

const suggestionSystemPrompt = `You are a highly intelligent and helpful AI assistant specialized in task management. Your goal is to take a user's raw task idea and transform it into a well-defined task with a clear title, detailed description, appropriate priority, a reasonable time estimate, and a suggested due date.

Respond ONLY with a JSON object. Do not include any other text or markdown outside the JSON.

The JSON object should have the following structure:
{
  "title": "string", // A concise, improved title for the task. Correct spelling and grammar.
  "description": "string", // A detailed and actionable description for the task.
  "priority": "LOW" | "MEDIUM" | "HIGH" | "URGENT", // The estimated priority of the task.
  "timeEstimate": "number", // The estimated time to complete the task in minutes (integer).
  "dueDate": "string" // The suggested due date and time in ISO 8601 format (e.g., 2025-12-31T23:59:59.000Z). Default to null if not specified.
}

Example:
User input: "fix bug in login by tomorrow"
Response:
{
  "title": "Fix Login Bug",
  "description": "Investigate and resolve the bug affecting the user login functionality. This includes identifying the root cause, implementing a fix, testing thoroughly, and deploying the solution.",
  "priority": "HIGH",
  "timeEstimate": 120,
  "dueDate": "%s"
}`

type SuggestionService struct {
	completer ports.Completer
	logger    *logger.Logger
	now       func() time.Time
}

func NewSuggestionService(completer ports.Completer, log *logger.Logger) *SuggestionService {
	return &SuggestionService{completer: completer, logger: log, now: time.Now}
}

// SuggestTask turns a free-text idea into a structured task draft. The model
// gets a single attempt; any unusable output is a malformed-output error.
func (s *SuggestionService) SuggestTask(ctx context.Context, userInput string) (*ports.TaskSuggestion, error) {
	if userInput == "" {
		return nil, ErrUserInputRequired
	}

	tomorrow := s.now().Add(24 * time.Hour).UTC().Format("2006-01-02T15:04:05.000Z")
	req := ports.CompletionRequest{
		SystemPrompt: fmt.Sprintf(suggestionSystemPrompt, tomorrow),
		UserPrompt:   "User input: " + userInput,
		JSONMode:     true,
		Temperature:  0.7,
	}

	content, err := s.completer.Complete(ctx, req)
	if err != nil {
		s.logger.Errorw("suggestion_upstream_failed", "error", err)
		return nil, NewUpstreamError("OpenAI API Error", err)
	}

	suggestion, err := parseSuggestion(content)
	if err != nil {
		s.logger.Errorw("suggestion_malformed_output", "error", err, "content", content)
		return nil, err
	}

	s.logger.Infow("suggestion_success", "title", suggestion.Title)
	return suggestion, nil
}

// parseSuggestion validates the model output against the required shape:
// title string, description string, priority enum, timeEstimate number,
// dueDate string or null.
func parseSuggestion(content string) (*ports.TaskSuggestion, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, NewMalformedOutputError("response is not a JSON object", err)
	}

	title, ok := raw["title"].(string)
	if !ok {
		return nil, NewMalformedOutputError("title is not a string", nil)
	}
	description, ok := raw["description"].(string)
	if !ok {
		return nil, NewMalformedOutputError("description is not a string", nil)
	}
	priority, ok := raw["priority"].(string)
	if !ok || !domain.Priority(priority).Valid() {
		return nil, NewMalformedOutputError("priority is not a valid value", nil)
	}
	timeEstimate, ok := raw["timeEstimate"].(float64)
	if !ok {
		return nil, NewMalformedOutputError("timeEstimate is not a number", nil)
	}

	suggestion := &ports.TaskSuggestion{
		Title:        title,
		Description:  description,
		Priority:     priority,
		TimeEstimate: timeEstimate,
	}

	switch due := raw["dueDate"].(type) {
	case nil:
	case string:
		suggestion.DueDate = &due
	default:
		return nil, NewMalformedOutputError("dueDate is neither string nor null", nil)
	}

	return suggestion, nil
}
