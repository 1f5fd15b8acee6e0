package db

import (
	"context"

	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/domain"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

type taskRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaskRepository(db *gorm.DB, log *logger.Logger) ports.TaskRepository {
	return &taskRepository{db: db, log: log}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		r.log.Errorw("task_repo_create_failed", "title", task.Title, "error", err)
		return err
	}
	r.log.Infow("task_repo_create_ok", "id", task.ID)
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		r.log.Warnw("task_repo_get_failed", "id", id, "error", err)
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetAll(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tasks).Error; err != nil {
		r.log.Errorw("task_repo_list_failed", "error", err)
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		r.log.Errorw("task_repo_update_failed", "id", task.ID, "error", err)
		return err
	}
	r.log.Infow("task_repo_update_ok", "id", task.ID)
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Task{}).Error; err != nil {
		r.log.Errorw("task_repo_delete_failed", "id", id, "error", err)
		return err
	}
	r.log.Infow("task_repo_delete_ok", "id", id)
	return nil
}
