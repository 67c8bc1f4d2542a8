// Package validation holds the task field rule-set shared by the REST
// controllers and the GraphQL resolvers, so both surfaces reject input
// identically.
package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Rellinxe27/task-manager-oauth-week08/models"

	"github.com/google/uuid"
)

// RuleError is a single first-violated-rule failure with a user-facing message.
type RuleError struct {
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

// TaskInput is a candidate task payload. Nil fields were omitted by the
// caller, which matters for update mode.
type TaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"dueDate"`
}

// ValidateCreate checks a payload in create mode: title, description and
// dueDate are required. The first violated rule wins; errors are not
// aggregated.
func ValidateCreate(in TaskInput) error {
	if in.Title == nil || in.Description == nil || in.DueDate == nil {
		return &RuleError{Message: "Please provide title, description, and dueDate"}
	}
	return validateFields(in)
}

// ValidateUpdate checks a payload in update mode: every field is optional,
// but a supplied field must satisfy the same constraints as in create mode.
func ValidateUpdate(in TaskInput) error {
	return validateFields(in)
}

func validateFields(in TaskInput) error {
	if in.Title != nil {
		// Trimming applies to the emptiness check only; the stored value
		// keeps the submitted whitespace.
		if strings.TrimSpace(*in.Title) == "" {
			return &RuleError{Message: "Title cannot be empty"}
		}
		if utf8.RuneCountInString(*in.Title) > 100 {
			return &RuleError{Message: "Title cannot exceed 100 characters"}
		}
	}

	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return &RuleError{Message: "Description cannot be empty"}
		}
		if utf8.RuneCountInString(*in.Description) > 500 {
			return &RuleError{Message: "Description cannot exceed 500 characters"}
		}
	}

	if in.Status != nil && !models.IsValidTaskStatus(*in.Status) {
		return &RuleError{Message: "Status must be: pending, in-progress, or completed"}
	}

	if in.DueDate != nil {
		if _, err := ParseDate(*in.DueDate); err != nil {
			return err
		}
	}

	return nil
}

// ParseTaskID parses a record identifier from a path or GraphQL argument.
func ParseTaskID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, &RuleError{Message: "Invalid task ID format"}
	}
	return parsed, nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate accepts the date formats clients actually send: full RFC3339,
// RFC3339 without a zone, and a bare calendar date.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &RuleError{Message: "Invalid date format"}
}
