package service

import (
	"errors"
	"fmt"
	"strings"
)

const (
	CodeNotFound        = "NOT_FOUND"
	CodeValidation      = "VALIDATION_ERROR"
	CodeDuplicateName   = "DUPLICATE_NAME"
	CodeNoPendingDelete = "NO_PENDING_DELETE"
	CodeReadOnlyEvent   = "READ_ONLY_EVENT"
)

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

type Detail struct {
	Key     string
	Payload any
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func ToDetail(key string, payload any) Detail {
	return Detail{
		Key:     key,
		Payload: payload,
	}
}

func NewBusinessError(code string, message string, details ...Detail) *BusinessError {
	busErr := &BusinessError{
		Code:    code,
		Message: message,
		Details: make(map[string]any),
	}
	for _, detail := range details {
		busErr.Details[detail.Key] = detail.Payload
	}
	return busErr
}

func NewNotFound(resource string, id string) *BusinessError {
	return &BusinessError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %s not found", resource, id),
		Details: map[string]any{
			"resource": resource,
			"id":       id,
		},
	}
}

func NewValidationError(field, reason string) *BusinessError {
	return &BusinessError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("invalid value of field '%s': %s", field, reason),
		Details: map[string]any{
			"field":  field,
			"reason": reason,
		},
	}
}

// FieldIssue is one rejected field of a record.
type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func NewInvalidRecord(resource string, issues []FieldIssue) *BusinessError {
	if len(issues) == 1 {
		err := NewValidationError(issues[0].Field, issues[0].Reason)
		err.Details["resource"] = resource
		return err
	}
	fields := make([]string, len(issues))
	for i, issue := range issues {
		fields[i] = issue.Field
	}
	return &BusinessError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("invalid %s: %s", resource, strings.Join(fields, ", ")),
		Details: map[string]any{
			"resource": resource,
			"fields":   issues,
		},
	}
}

func NewDuplicateName(list, name string) *BusinessError {
	return &BusinessError{
		Code:    CodeDuplicateName,
		Message: fmt.Sprintf("%s '%s' already exists", list, name),
		Details: map[string]any{
			"list": list,
			"name": name,
		},
	}
}

func NewNoPendingDelete(resource string) *BusinessError {
	return &BusinessError{
		Code:    CodeNoPendingDelete,
		Message: fmt.Sprintf("no %s is waiting for delete confirmation", resource),
		Details: map[string]any{
			"resource": resource,
		},
	}
}

func NewReadOnlyEvent(eventID, taskID string) *BusinessError {
	return &BusinessError{
		Code:    CodeReadOnlyEvent,
		Message: fmt.Sprintf("event %s comes from a personal task; edit task %s instead", eventID, taskID),
		Details: map[string]any{
			"id":     eventID,
			"taskId": taskID,
		},
	}
}

// HasCode reports whether err is a BusinessError with code.
func HasCode(err error, code string) bool {
	var busErr *BusinessError
	return errors.As(err, &busErr) && busErr.Code == code
}
