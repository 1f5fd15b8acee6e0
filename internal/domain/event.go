package domain

import "time"

// ==================== EVENT LOG ====================

type EventType string

const (
	EventTaskCreated   EventType = "TASK_CREATED"
	EventTaskUpdated   EventType = "TASK_UPDATED"
	EventTaskCompleted EventType = "TASK_COMPLETED"
	EventTaskDeleted   EventType = "TASK_DELETED"
)

// LogEvent is one line of the analytics log. The writer stamps Timestamp at
// append time; Details carries the full task record at the moment the event
// fired.
type LogEvent struct {
	Timestamp time.Time   `json:"timestamp"`
	Event     EventType   `json:"event"`
	TaskID    string      `json:"taskId"`
	Details   interface{} `json:"details,omitempty"`
}
