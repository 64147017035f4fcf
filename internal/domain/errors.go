package domain

import (
	"fmt"
)

// ErrorCode classifies a failure for the HTTP boundary.
type ErrorCode string

const (
	CodeInternal         ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput     ErrorCode = "INVALID_INPUT"
	CodeValidation       ErrorCode = "VALIDATION_FAILED"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeExamNotFound     ErrorCode = "EXAM_NOT_FOUND"
	CodeQuestionNotFound ErrorCode = "QUESTION_NOT_FOUND"
	CodeUpstreamFormat   ErrorCode = "UPSTREAM_FORMAT"
	CodeUpstreamTimeout  ErrorCode = "UPSTREAM_TIMEOUT"
	CodeStorageFailure   ErrorCode = "STORAGE_FAILURE"
	CodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	CodeForbidden        ErrorCode = "FORBIDDEN"
)

// DomainError is the closed error variant set used across the service.
// Context carries machine-readable detail such as the full validation
// message list or bulk-write counts.
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewInvalidInputError reports caller-supplied data that is missing or
// malformed (no file, empty answers map, empty extracted text).
func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

// NewValidationError carries the complete per-field message list, never
// just the first failure.
func NewValidationError(messages []string) *DomainError {
	err := NewError(CodeValidation, "Invalid data detected. Please fix the following errors and try again.", nil)
	err.Context = map[string]interface{}{"errors": messages}
	return err
}

// ValidationMessages extracts the message list from a validation error.
func (e *DomainError) ValidationMessages() []string {
	if e.Context == nil {
		return nil
	}
	if msgs, ok := e.Context["errors"].([]string); ok {
		return msgs
	}
	return nil
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewExamNotFoundError(examID string) *DomainError {
	return NewError(CodeExamNotFound, fmt.Sprintf("No exam found with ID %s", examID), nil)
}

func NewQuestionNotFoundError(questionID string) *DomainError {
	return NewError(CodeQuestionNotFound, fmt.Sprintf("No question found with ID %s", questionID), nil)
}

// NewUpstreamFormatError reports a generation-model response that is not
// JSON, or is JSON with the wrong structure. The caller did nothing wrong.
func NewUpstreamFormatError(message string, cause error) *DomainError {
	return NewError(CodeUpstreamFormat, message, cause)
}

// NewUpstreamTimeoutError reports a caller-side deadline hit on the single
// model call; treated like an upstream format failure at the boundary.
func NewUpstreamTimeoutError(cause error) *DomainError {
	return NewError(CodeUpstreamTimeout, "The generation model did not respond in time", cause)
}

// NewStorageError reports a persistence failure after validation passed.
// written/requested expose partial batch progress.
func NewStorageError(message string, cause error, written, requested int) *DomainError {
	err := NewError(CodeStorageFailure, message, cause)
	err.Context = map[string]interface{}{
		"written":   written,
		"requested": requested,
	}
	return err
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewForbiddenError(message string) *DomainError {
	return NewError(CodeForbidden, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}
