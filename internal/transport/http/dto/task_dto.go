package dto

import (
	"time"

	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/domain"
)

type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

type CreateTaskRequest struct {
	Title        string      `json:"title"`
	Description  *string     `json:"description"`
	Priority     string      `json:"priority"`
	TimeEstimate interface{} `json:"timeEstimate"`
	DueDate      *string     `json:"dueDate"`
}

func (r *CreateTaskRequest) ToInput() (ports.CreateTaskInput, error) {
	input := ports.CreateTaskInput{
		Title:        r.Title,
		Description:  r.Description,
		Priority:     domain.Priority(r.Priority),
		TimeEstimate: r.TimeEstimate,
	}

	if r.DueDate != nil && *r.DueDate != "" {
		due, err := time.Parse(time.RFC3339, *r.DueDate)
		if err != nil {
			return input, err
		}
		input.DueDate = &due
	}

	return input, nil
}

type SuggestTaskRequest struct {
	UserInput string `json:"userInput"`
}

type ChatQueryRequest struct {
	Question string `json:"question"`
}

type ChatQueryResponse struct {
	Answer string `json:"answer"`
}

type ReportResponse struct {
	Report interface{} `json:"report"`
}
