package services

import (
	"errors"
	"fmt"
)

// Task errors
var (
	ErrTaskNotFound     = errors.New("task: not found")
	ErrTitleRequired    = errors.New("task: title is required")
	ErrInvalidPriority  = errors.New("task: invalid priority")
	ErrInvalidStatus    = errors.New("task: invalid status")
	ErrTaskDeleteFailed = errors.New("task: delete failed")
)

// AI input errors
var (
	ErrUserInputRequired = errors.New("suggestion: user input is required")
	ErrQuestionRequired  = errors.New("chat: question is required")
)

// AIErrorKind separates a failed upstream call from a response that came back
// but did not hold usable content. Both surface as 500 at the boundary; the
// kind survives in logs and in the error detail.
type AIErrorKind string

const (
	AIErrorUpstream        AIErrorKind = "upstream"
	AIErrorMalformedOutput AIErrorKind = "malformed_output"
)

type AIError struct {
	Kind   AIErrorKind
	Detail string
	Err    error
}

func (e *AIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ai %s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("ai %s: %s", e.Kind, e.Detail)
}

func (e *AIError) Unwrap() error { return e.Err }

func NewUpstreamError(detail string, err error) *AIError {
	return &AIError{Kind: AIErrorUpstream, Detail: detail, Err: err}
}

func NewMalformedOutputError(detail string, err error) *AIError {
	return &AIError{Kind: AIErrorMalformedOutput, Detail: detail, Err: err}
}
