package domain

import (
	"testing"
	"time"
)

func TestNormalizeTimeEstimate(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want int
	}{
		{"json number", float64(45), 45},
		{"numeric string", "90", 90},
		{"non-numeric string", "abc", 30},
		{"negative number", float64(-5), 30},
		{"zero", float64(0), 30},
		{"nil", nil, 30},
		{"int", 15, 15},
		{"bool", true, 30},
	}
	for _, tt := range tests {
		if got := NormalizeTimeEstimate(tt.raw); got != tt.want {
			t.Errorf("%s: NormalizeTimeEstimate(%v) = %d, want %d", tt.name, tt.raw, got, tt.want)
		}
	}
}

func TestToCalendarEventUsesCreatedAtWithoutDueDate(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	task := Task{ID: "t1", Title: "Write annual report", CreatedAt: created}

	event := task.ToCalendarEvent()
	if !event.Start.Equal(created) || !event.End.Equal(created) {
		t.Errorf("expected start=end=%v, got start=%v end=%v", created, event.Start, event.End)
	}
	if event.ID != "t1" || event.Title != "Write annual report" {
		t.Errorf("projection lost identity: %+v", event)
	}
}

func TestToCalendarEventPrefersDueDate(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2024, 2, 15, 9, 30, 0, 0, time.UTC)
	task := Task{ID: "t2", Title: "Dentist", CreatedAt: created, DueDate: &due}

	event := task.ToCalendarEvent()
	if !event.Start.Equal(due) || !event.End.Equal(due) {
		t.Errorf("expected start=end=%v, got start=%v end=%v", due, event.Start, event.End)
	}
}

func TestPriorityValid(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent} {
		if !p.Valid() {
			t.Errorf("expected %q to be valid", p)
		}
	}
	if Priority("CRITICAL").Valid() {
		t.Error("expected CRITICAL to be invalid")
	}
}

func TestTaskStatusValid(t *testing.T) {
	for _, s := range []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted} {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if TaskStatus("DONE").Valid() {
		t.Error("expected DONE to be invalid")
	}
}
