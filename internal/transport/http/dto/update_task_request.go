package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/domain"
)

// UpdateInputFromBody decodes a PATCH body into an update input. Decoding
// goes through a map so that an explicit null can be told apart from an
// absent field for the clearable columns.
func UpdateInputFromBody(body []byte) (ports.UpdateTaskInput, error) {
	var input ports.UpdateTaskInput

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return input, err
	}

	if v, present := raw["title"]; present {
		s, ok := v.(string)
		if !ok {
			return input, fmt.Errorf("title must be a string")
		}
		input.Title = &s
	}

	if v, present := raw["description"]; present {
		if v == nil {
			input.ClearDescription = true
		} else {
			s, ok := v.(string)
			if !ok {
				return input, fmt.Errorf("description must be a string")
			}
			input.Description = &s
		}
	}

	if v, present := raw["priority"]; present {
		s, ok := v.(string)
		if !ok {
			return input, fmt.Errorf("priority must be a string")
		}
		p := domain.Priority(s)
		input.Priority = &p
	}

	if v, present := raw["status"]; present {
		s, ok := v.(string)
		if !ok {
			return input, fmt.Errorf("status must be a string")
		}
		st := domain.TaskStatus(s)
		input.Status = &st
	}

	if v, present := raw["timeEstimate"]; present {
		input.TimeEstimate = v
	}

	if v, present := raw["dueDate"]; present {
		if v == nil {
			input.ClearDueDate = true
		} else {
			t, err := parseTimestamp(v)
			if err != nil {
				return input, fmt.Errorf("dueDate: %w", err)
			}
			input.DueDate = t
		}
	}

	if v, present := raw["completedAt"]; present {
		if v == nil {
			input.ClearCompletedAt = true
		} else {
			t, err := parseTimestamp(v)
			if err != nil {
				return input, fmt.Errorf("completedAt: %w", err)
			}
			input.CompletedAt = t
		}
	}

	return input, nil
}

func parseTimestamp(v interface{}) (*time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("must be an ISO 8601 string")
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
