package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/core/services"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
	"github.com/taskpilot/backend/internal/transport/http/dto"
)

type AIHandler struct {
	suggestions ports.SuggestionService
	chat        ports.ChatService
	logger      *logger.Logger
}

func NewAIHandler(suggestions ports.SuggestionService, chat ports.ChatService, logger *logger.Logger) *AIHandler {
	return &AIHandler{suggestions: suggestions, chat: chat, logger: logger}
}

func (h *AIHandler) SuggestTask(c *fiber.Ctx) error {
	var req dto.SuggestTaskRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("suggest_task_body_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "User input is required",
		})
	}

	suggestion, err := h.suggestions.SuggestTask(c.Context(), req.UserInput)
	if err != nil {
		if errors.Is(err, services.ErrUserInputRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "User input is required",
			})
		}
		return aiErrorResponse(c, h.logger, "suggest_task_failed", err)
	}

	return c.JSON(suggestion)
}

func (h *AIHandler) ChatQuery(c *fiber.Ctx) error {
	var req dto.ChatQueryRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("chat_query_body_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Question is required",
		})
	}

	answer, err := h.chat.Answer(c.Context(), req.Question)
	if err != nil {
		if errors.Is(err, services.ErrQuestionRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "Question is required",
			})
		}
		return aiErrorResponse(c, h.logger, "chat_query_failed", err)
	}

	return c.JSON(dto.ChatQueryResponse{Answer: answer})
}

// aiErrorResponse maps service failures to the wire shape the UI expects:
// upstream and malformed-output both surface as 500, with the kind kept in
// the logs and the human detail in the body.
func aiErrorResponse(c *fiber.Ctx, log *logger.Logger, event string, err error) error {
	var aiErr *services.AIError
	if errors.As(err, &aiErr) {
		log.Errorw(event, "kind", aiErr.Kind, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "OpenAI API Error",
			Details: aiErr.Detail,
		})
	}
	log.Errorw(event, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error:   "Internal Server Error",
		Details: err.Error(),
	})
}
