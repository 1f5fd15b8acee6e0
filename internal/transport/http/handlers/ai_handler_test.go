package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/core/services"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
)

type stubSuggestionService struct {
	suggestion *ports.TaskSuggestion
	err        error
}

func (s *stubSuggestionService) SuggestTask(_ context.Context, userInput string) (*ports.TaskSuggestion, error) {
	if userInput == "" {
		return nil, services.ErrUserInputRequired
	}
	return s.suggestion, s.err
}

type stubChatService struct {
	answer string
	err    error
}

func (s *stubChatService) Answer(_ context.Context, question string) (string, error) {
	if question == "" {
		return "", services.ErrQuestionRequired
	}
	return s.answer, s.err
}

type stubReportService struct {
	report interface{}
	err    error
}

func (s *stubReportService) AnalyzeLogs(_ context.Context) (interface{}, error) {
	return s.report, s.err
}

func newAITestApp(suggest *stubSuggestionService, chat *stubChatService) *fiber.App {
	handler := NewAIHandler(suggest, chat, logger.NewNop())
	app := fiber.New()
	app.Post("/suggest-task", handler.SuggestTask)
	app.Post("/chat-query", handler.ChatQuery)
	return app
}

func TestSuggestTaskEndpoint(t *testing.T) {
	due := "2025-12-31T23:59:59.000Z"
	app := newAITestApp(&stubSuggestionService{suggestion: &ports.TaskSuggestion{
		Title:        "Fix Login Bug",
		Description:  "Investigate and fix.",
		Priority:     "HIGH",
		TimeEstimate: 120,
		DueDate:      &due,
	}}, &stubChatService{})

	resp, body := doJSON(t, app, "POST", "/suggest-task", `{"userInput":"fix login"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}

	var suggestion ports.TaskSuggestion
	if err := json.Unmarshal(body, &suggestion); err != nil {
		t.Fatal(err)
	}
	if suggestion.Title != "Fix Login Bug" || suggestion.Priority != "HIGH" {
		t.Errorf("suggestion = %+v", suggestion)
	}
}

func TestSuggestTaskEndpointMissingInput(t *testing.T) {
	app := newAITestApp(&stubSuggestionService{}, &stubChatService{})

	resp, body := doJSON(t, app, "POST", "/suggest-task", `{}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var errResp map[string]string
	json.Unmarshal(body, &errResp)
	if errResp["error"] != "User input is required" {
		t.Errorf("error = %q", errResp["error"])
	}
}

func TestSuggestTaskEndpointUpstreamError(t *testing.T) {
	app := newAITestApp(&stubSuggestionService{
		err: services.NewUpstreamError("OpenAI API Error", nil),
	}, &stubChatService{})

	resp, body := doJSON(t, app, "POST", "/suggest-task", `{"userInput":"x"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var errResp map[string]interface{}
	json.Unmarshal(body, &errResp)
	if errResp["error"] != "OpenAI API Error" {
		t.Errorf("error = %v", errResp["error"])
	}
}

func TestChatQueryEndpoint(t *testing.T) {
	app := newAITestApp(&stubSuggestionService{}, &stubChatService{answer: "You have 3 tasks."})

	resp, body := doJSON(t, app, "POST", "/chat-query", `{"question":"how many tasks?"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var answer map[string]string
	json.Unmarshal(body, &answer)
	if answer["answer"] != "You have 3 tasks." {
		t.Errorf("answer = %q", answer["answer"])
	}
}

func TestChatQueryEndpointMissingQuestion(t *testing.T) {
	app := newAITestApp(&stubSuggestionService{}, &stubChatService{})

	resp, body := doJSON(t, app, "POST", "/chat-query", `{}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var errResp map[string]string
	json.Unmarshal(body, &errResp)
	if errResp["error"] != "Question is required" {
		t.Errorf("error = %q", errResp["error"])
	}
}

func TestAnalyzeLogsEndpointInformationalString(t *testing.T) {
	logsHandler := NewLogsHandler(nil, &stubReportService{
		report: "No activity logged yet. Complete some tasks to generate a report.",
	}, logger.NewNop())
	app := fiber.New()
	app.Get("/analyze-logs", logsHandler.AnalyzeLogs)

	resp, body := doJSON(t, app, "GET", "/analyze-logs", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var result struct {
		Report interface{} `json:"report"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatal(err)
	}
	if _, ok := result.Report.(string); !ok {
		t.Errorf("report = %T, want informational string", result.Report)
	}
}

func TestAnalyzeLogsEndpointUpstreamError(t *testing.T) {
	logsHandler := NewLogsHandler(nil, &stubReportService{
		err: services.NewUpstreamError("OpenAI API Error", nil),
	}, logger.NewNop())
	app := fiber.New()
	app.Get("/analyze-logs", logsHandler.AnalyzeLogs)

	resp, _ := doJSON(t, app, "GET", "/analyze-logs", "")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}
