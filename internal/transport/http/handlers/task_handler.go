package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/core/services"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
	"github.com/taskpilot/backend/internal/transport/http/dto"
)

type TaskHandler struct {
	service ports.TaskService
	logger  *logger.Logger
}

func NewTaskHandler(service ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{service: service, logger: logger}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("task_create_body_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	input, err := req.ToInput()
	if err != nil {
		h.logger.Warnw("task_create_bad_due_date", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "dueDate must be an ISO 8601 timestamp",
		})
	}

	task, err := h.service.CreateTask(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "Title is required",
			})
		}
		if errors.Is(err, services.ErrInvalidPriority) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		h.logger.Errorw("task_create_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	tasks, err := h.service.GetTasks(c.Context())
	if err != nil {
		h.logger.Errorw("tasks_list_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Internal Server Error",
		})
	}
	return c.JSON(tasks)
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	task, err := h.service.GetTaskByID(c.Context(), c.Params("id"))
	if err != nil {
		h.logger.Warnw("task_get_not_found", "id", c.Params("id"))
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "Task not found",
		})
	}
	return c.JSON(task)
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	input, err := dto.UpdateInputFromBody(c.Body())
	if err != nil {
		h.logger.Warnw("task_update_bad_body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	task, err := h.service.UpdateTask(c.Context(), c.Params("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Task not found",
			})
		case errors.Is(err, services.ErrTitleRequired),
			errors.Is(err, services.ErrInvalidPriority),
			errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		h.logger.Errorw("task_update_failed", "id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Internal Server Error",
		})
	}

	return c.JSON(task)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	if err := h.service.DeleteTask(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Task not found",
			})
		}
		h.logger.Errorw("task_delete_failed", "id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Internal Server Error",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TaskHandler) GetCalendarEvents(c *fiber.Ctx) error {
	events, err := h.service.GetCalendarEvents(c.Context())
	if err != nil {
		h.logger.Errorw("calendar_events_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Internal Server Error",
		})
	}
	return c.JSON(events)
}
