package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/domain"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
)

type TaskServiceConfig struct {
	Repository ports.TaskRepository
	EventLog   ports.EventLog
	Logger     *logger.Logger
}

type TaskService struct {
	repo     ports.TaskRepository
	eventLog ports.EventLog
	logger   *logger.Logger
	now      func() time.Time
}

func NewTaskService(cfg TaskServiceConfig) *TaskService {
	return &TaskService{
		repo:     cfg.Repository,
		eventLog: cfg.EventLog,
		logger:   cfg.Logger,
		now:      time.Now,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	now := s.now()
	task := &domain.Task{
		ID:           uuid.New().String(),
		Title:        input.Title,
		Description:  input.Description,
		Priority:     priority,
		Status:       domain.TaskStatusTodo,
		TimeEstimate: domain.NormalizeTimeEstimate(input.TimeEstimate),
		DueDate:      input.DueDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		s.logger.Errorw("task_create_failed", "title", input.Title, "error", err)
		return nil, err
	}

	s.eventLog.Append(domain.LogEvent{
		Event:   domain.EventTaskCreated,
		TaskID:  task.ID,
		Details: task,
	})

	s.logger.Infow("task_create_success", "id", task.ID, "title", task.Title)
	return task, nil
}

func (s *TaskService) GetTasks(ctx context.Context) ([]domain.Task, error) {
	return s.repo.GetAll(ctx)
}

func (s *TaskService) GetTaskByID(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrTaskNotFound
	}

	wasCompleted := task.Status == domain.TaskStatusCompleted

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleRequired
		}
		task.Title = *input.Title
	}
	if input.ClearDescription {
		task.Description = nil
	} else if input.Description != nil {
		task.Description = input.Description
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		task.Status = *input.Status
	}
	if input.TimeEstimate != nil {
		task.TimeEstimate = domain.NormalizeTimeEstimate(input.TimeEstimate)
	}
	if input.ClearDueDate {
		task.DueDate = nil
	} else if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	now := s.now()
	completedNow := task.Status == domain.TaskStatusCompleted && !wasCompleted

	// completedAt follows the status unless the caller sets it explicitly.
	switch {
	case input.ClearCompletedAt:
		task.CompletedAt = nil
	case input.CompletedAt != nil:
		task.CompletedAt = input.CompletedAt
	case completedNow:
		t := now
		task.CompletedAt = &t
	case wasCompleted && task.Status != domain.TaskStatusCompleted:
		task.CompletedAt = nil
	}

	task.UpdatedAt = now

	if err := s.repo.Update(ctx, task); err != nil {
		s.logger.Errorw("task_update_failed", "id", id, "error", err)
		return nil, err
	}

	event := domain.EventTaskUpdated
	if completedNow {
		event = domain.EventTaskCompleted
	}
	s.eventLog.Append(domain.LogEvent{
		Event:   event,
		TaskID:  task.ID,
		Details: task,
	})

	s.logger.Infow("task_update_success", "id", task.ID, "status", task.Status)
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrTaskNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Errorw("task_delete_failed", "id", id, "error", err)
		return ErrTaskDeleteFailed
	}

	s.eventLog.Append(domain.LogEvent{
		Event:  domain.EventTaskDeleted,
		TaskID: task.ID,
		Details: map[string]interface{}{
			"title": task.Title,
		},
	})

	s.logger.Infow("task_delete_success", "id", id)
	return nil
}

func (s *TaskService) GetCalendarEvents(ctx context.Context) ([]domain.CalendarEvent, error) {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]domain.CalendarEvent, 0, len(tasks))
	for i := range tasks {
		events = append(events, tasks[i].ToCalendarEvent())
	}
	return events, nil
}
