package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/core/services"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
	"github.com/taskpilot/backend/internal/transport/http/dto"
)

type LogsHandler struct {
	eventLog ports.EventLog
	reports  ports.ReportService
	logger   *logger.Logger
}

func NewLogsHandler(eventLog ports.EventLog, reports ports.ReportService, logger *logger.Logger) *LogsHandler {
	return &LogsHandler{eventLog: eventLog, reports: reports, logger: logger}
}

func (h *LogsHandler) GetRawLogs(c *fiber.Ctx) error {
	entries, err := h.eventLog.Read()
	if err != nil {
		h.logger.Errorw("raw_logs_read_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "Internal Server Error",
			Details: err.Error(),
		})
	}
	return c.JSON(entries)
}

func (h *LogsHandler) AnalyzeLogs(c *fiber.Ctx) error {
	report, err := h.reports.AnalyzeLogs(c.Context())
	if err != nil {
		var aiErr *services.AIError
		if errors.As(err, &aiErr) {
			h.logger.Errorw("analyze_logs_ai_failed", "kind", aiErr.Kind, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error:   "OpenAI API Error",
				Details: aiErr.Detail,
			})
		}
		h.logger.Errorw("analyze_logs_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "Internal Server Error",
			Details: err.Error(),
		})
	}
	return c.JSON(dto.ReportResponse{Report: report})
}
