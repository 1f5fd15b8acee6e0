package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
)

const chatSystemPromptFormat = `You are a helpful AI assistant specialized in analyzing user task data.
The user will ask questions about their tasks. You have access to their task list (from a database) and a log of task events (creation and completion).
Answer the user's questions based SOLELY on the provided data. If the data is insufficient to answer a question, state that clearly.
Be concise and direct. Format your answers clearly.

The current date and time is: %s. Use this information to answer any questions about dates and times.

Here is the user's task data:

--- Tasks (from database) ---
%s

--- Task Events Log ---
%s

--- End of Data ---`

type ChatService struct {
	completer ports.Completer
	repo      ports.TaskRepository
	eventLog  ports.EventLog
	logger    *logger.Logger
	now       func() time.Time
}

func NewChatService(completer ports.Completer, repo ports.TaskRepository, eventLog ports.EventLog, log *logger.Logger) *ChatService {
	return &ChatService{
		completer: completer,
		repo:      repo,
		eventLog:  eventLog,
		logger:    log,
		now:       time.Now,
	}
}

// Answer embeds the full task list and event log into the prompt and returns
// the model's answer verbatim. Calls are independent; there is no server-side
// conversation memory.
func (s *ChatService) Answer(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", ErrQuestionRequired
	}

	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Errorw("chat_tasks_fetch_failed", "error", err)
		return "", err
	}

	// A broken log must not break chat; the model just sees fewer events.
	entries, err := s.eventLog.Read()
	if err != nil {
		s.logger.Warnw("chat_log_read_failed", "error", err)
		entries = nil
	}

	tasksJSON, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return "", err
	}
	entriesJSON, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}

	req := ports.CompletionRequest{
		SystemPrompt: fmt.Sprintf(chatSystemPromptFormat, s.now().Format(time.RFC1123), tasksJSON, entriesJSON),
		UserPrompt:   question,
		Temperature:  0.5,
	}

	answer, err := s.completer.Complete(ctx, req)
	if err != nil {
		s.logger.Errorw("chat_upstream_failed", "error", err)
		return "", NewUpstreamError("OpenAI API Error", err)
	}

	s.logger.Infow("chat_success", "question_len", len(question), "answer_len", len(answer))
	return answer, nil
}
