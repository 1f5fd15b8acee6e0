package services

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"strings"

	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
)

const (
	reportNoActivityMessage = "No activity logged yet. Complete some tasks to generate a report."
	reportMissingLogMessage = "No activity has been logged yet. Complete some tasks first."
)

const reportSystemPrompt = `You are an expert productivity analyst. Your task is to analyze a log of user task events (creation and completion) and generate a comprehensive, detailed, and actionable report. The report should provide deep insights into the user's task management habits, productivity patterns, and areas for improvement.

Your response MUST be a JSON object with the following structure. Ensure all data is derived SOLELY from the provided log entries. Do not invent data.

{
  "summaryText": "string", // A detailed, markdown-formatted textual summary of the user's productivity (min 300 words). It should cover overall trends, task breakdowns, time analysis, strengths, weaknesses, and actionable recommendations.
  "keyMetrics": { // Key numerical metrics for quick overview.
    "totalCreated": number,
    "totalCompleted": number,
    "completionRate": number, // Percentage, e.g., 75.5
    "averageOverallCompletionTime": number // In minutes, e.g., 60.5
  },
  "chartData": { // Structured data for charts.
    "tasksByPriority": { // Example: {"LOW": {"created": 5, "completed": 3}, ...}
      "LOW": {"created": number, "completed": number},
      "MEDIUM": {"created": number, "completed": number},
      "HIGH": {"created": number, "completed": number},
      "URGENT": {"created": number, "completed": number}
    },
    "tasksByCategory": { // Example: {"Development": {"created": 10, "completed": 8}, ...}
      "CategoryName": {"created": number, "completed": number}
    },
    "avgCompletionTimes": { // Example: {"Development-HIGH": "120.5", ...}
      "Category-Priority": "string" // Average time in minutes, as a string with one decimal place.
    }
  },
  "categorizedTasksGrid": [ // Data for a grid/table of tasks by category.
    {
      "category": "string",
      "created": number,
      "completed": number,
      "completionRate": number, // Percentage
      "avgTime": number // Average time in minutes for completed tasks in this category
    }
  ],
  "insights": ["string"] // An array of actionable insights and suggestions for the user (at least 5 distinct, detailed, and actionable points based on the data).
}

Analyze the provided log entries (JSONL format) and generate the report.
For "categorizedTasksGrid", categorize tasks based on keywords in their title/description (e.g., "report", "analysis" -> "Reporting & Analysis"; "code", "develop" -> "Development"; "meeting", "schedule" -> "Meetings & Coordination"; "grill", "cook", "food" -> "Cooking & Meals"; "fix", "repair" -> "Maintenance & Repair"; "clean", "organize" -> "Housekeeping"; "exercise", "workout" -> "Health & Fitness"; otherwise "General").
Ensure all numerical values are actual numbers, not strings, unless specified (like avgCompletionTimes).
Calculate completion rates and average times accurately.
Provide at least 5 distinct, detailed, and actionable insights in the "insights" array.`

type ReportService struct {
	completer ports.Completer
	eventLog  ports.EventLog
	logger    *logger.Logger
}

func NewReportService(completer ports.Completer, eventLog ports.EventLog, log *logger.Logger) *ReportService {
	return &ReportService{completer: completer, eventLog: eventLog, logger: log}
}

// AnalyzeLogs feeds the whole event log to the model and returns the parsed
// report object. An empty or missing log short-circuits to an informational
// string without touching the model.
func (s *ReportService) AnalyzeLogs(ctx context.Context) (interface{}, error) {
	content, err := s.eventLog.ReadRaw()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return reportMissingLogMessage, nil
		}
		s.logger.Errorw("report_log_read_failed", "error", err)
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return reportNoActivityMessage, nil
	}

	req := ports.CompletionRequest{
		SystemPrompt: reportSystemPrompt,
		UserPrompt:   "Log entries (JSONL format):\n" + content,
		JSONMode:     true,
		Temperature:  0.7,
	}

	answer, err := s.completer.Complete(ctx, req)
	if err != nil {
		s.logger.Errorw("report_upstream_failed", "error", err)
		return nil, NewUpstreamError("OpenAI API Error", err)
	}

	report, err := parseReport(answer)
	if err != nil {
		s.logger.Errorw("report_malformed_output", "error", err)
		return nil, err
	}

	s.logger.Infow("report_success")
	return report, nil
}

// parseReport checks the top-level shape only; nested metric values pass
// through as the model produced them.
func parseReport(content string) (map[string]interface{}, error) {
	var report map[string]interface{}
	if err := json.Unmarshal([]byte(content), &report); err != nil {
		return nil, NewMalformedOutputError("report is not a JSON object", err)
	}

	if _, ok := report["summaryText"].(string); !ok {
		return nil, NewMalformedOutputError("summaryText is not a string", nil)
	}
	if _, ok := report["chartData"].(map[string]interface{}); !ok {
		return nil, NewMalformedOutputError("chartData is not an object", nil)
	}
	if _, ok := report["insights"].([]interface{}); !ok {
		return nil, NewMalformedOutputError("insights is not an array", nil)
	}

	return report, nil
}
