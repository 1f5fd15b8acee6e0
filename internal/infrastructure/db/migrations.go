package db

import (
	"github.com/taskpilot/backend/internal/domain"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Task{}); err != nil {
		return err
	}

	// The task list always reads newest-first.
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tasks_created_at_desc
		ON tasks (created_at DESC)
	`).Error
}
