package domain

import (
	"strconv"
	"time"
)

// ==================== ENUMS ====================

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

const DefaultTimeEstimate = 30

// ==================== ENTITIES ====================

type Task struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  *string    `gorm:"type:text" json:"description"`
	Priority     Priority   `gorm:"size:10;not null;default:'MEDIUM'" json:"priority"`
	Status       TaskStatus `gorm:"size:15;not null;default:'TODO'" json:"status"`
	TimeEstimate int        `gorm:"not null;default:30" json:"timeEstimate"`
	DueDate      *time.Time `json:"dueDate"`
	CompletedAt  *time.Time `json:"completedAt"`
}

// CalendarEvent is the read-side projection of a task for the calendar view.
// Derived on every request, never persisted.
type CalendarEvent struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ToCalendarEvent projects the task onto the calendar: the event sits at the
// due date when one is set, otherwise at the creation time.
func (t *Task) ToCalendarEvent() CalendarEvent {
	at := t.CreatedAt
	if t.DueDate != nil {
		at = *t.DueDate
	}
	return CalendarEvent{
		ID:    t.ID,
		Title: t.Title,
		Start: at,
		End:   at,
	}
}

// NormalizeTimeEstimate coerces a raw client value into a positive integer
// number of minutes. Anything non-numeric or non-positive falls back to the
// 30-minute default.
func NormalizeTimeEstimate(raw interface{}) int {
	switch v := raw.(type) {
	case float64:
		if n := int(v); n > 0 {
			return n
		}
	case int:
		if v > 0 {
			return v
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultTimeEstimate
}
