package models

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// IsValidTaskStatus reports whether s is one of the three stored status values.
func IsValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// ErrTaskInvalid is returned by the model-level guard when a task violates its
// schema constraints. Distinct from a missing record.
var ErrTaskInvalid = errors.New("task failed schema validation")

// Task is owned exclusively by the user who created it. Rows are deleted
// permanently, so there is no DeletedAt column.
type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"not null" json:"description"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	DueDate     time.Time  `gorm:"not null" json:"dueDate"`
	CreatedAt   time.Time  `gorm:"not null;default:now()" json:"createdAt"`
}

// BeforeCreate re-checks the field constraints at the store boundary, in case a
// caller reaches the service without going through the shared rule-set.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(t.Title) == "" || utf8.RuneCountInString(t.Title) > 100 {
		return ErrTaskInvalid
	}
	if strings.TrimSpace(t.Description) == "" || utf8.RuneCountInString(t.Description) > 500 {
		return ErrTaskInvalid
	}
	if t.Status == "" {
		t.Status = TaskStatusPending
	}
	if !IsValidTaskStatus(string(t.Status)) {
		return ErrTaskInvalid
	}
	if t.UserID == uuid.Nil {
		return ErrTaskInvalid
	}
	return nil
}
