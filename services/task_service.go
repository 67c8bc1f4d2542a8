package services

import (
	"errors"

	"github.com/Rellinxe27/task-manager-oauth-week08/broker"
	"github.com/Rellinxe27/task-manager-oauth-week08/database"
	"github.com/Rellinxe27/task-manager-oauth-week08/models"
	"github.com/Rellinxe27/task-manager-oauth-week08/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskServiceInterface interface {
	GetTasks(db *database.Database, userID uuid.UUID) ([]models.Task, error)
	GetTaskById(db *database.Database, userID, id uuid.UUID) (models.Task, error)
	CreateTask(db *database.Database, userID uuid.UUID, input validation.TaskInput) (models.Task, error)
	UpdateTask(db *database.Database, userID, id uuid.UUID, input validation.TaskInput) (models.Task, error)
	DeleteTask(db *database.Database, userID, id uuid.UUID) (models.Task, error)
}

// TaskService owns all task persistence. Every operation filters on both the
// record id and the owner id in a single query, so a record that exists but
// belongs to someone else is indistinguishable from one that does not exist.
type TaskService struct{}

func NewTaskService() *TaskService {
	return &TaskService{}
}

func (s *TaskService) GetTasks(db *database.Database, userID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	result := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

func (s *TaskService) GetTaskById(db *database.Database, userID, id uuid.UUID) (models.Task, error) {
	var task models.Task
	if err := db.DB.First(&task, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}
	return task, nil
}

func (s *TaskService) CreateTask(db *database.Database, userID uuid.UUID, input validation.TaskInput) (models.Task, error) {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}

	task := models.Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       *input.Title,
		Description: *input.Description,
		Status:      models.TaskStatusPending,
	}

	if input.Status != nil {
		task.Status = models.TaskStatus(*input.Status)
	}

	dueDate, err := validation.ParseDate(*input.DueDate)
	if err != nil {
		tx.Rollback()
		return models.Task{}, ErrValidation
	}
	task.DueDate = dueDate

	if err := tx.Create(&task).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, models.ErrTaskInvalid) {
			return models.Task{}, ErrValidation
		}
		return models.Task{}, err
	}

	event, err := models.NewEvent(
		string(broker.TaskCreated),
		"task",
		task.UserID.String(),
		map[string]interface{}{
			"task_id": task.ID.String(),
			"user_id": task.UserID.String(),
			"title":   task.Title,
			"status":  string(task.Status),
		},
	)

	if err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	broker.PublishEvent(string(broker.TaskCreated), event)

	return task, nil
}

func (s *TaskService) UpdateTask(db *database.Database, userID, id uuid.UUID, input validation.TaskInput) (models.Task, error) {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}

	var task models.Task
	if err := tx.First(&task, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	// Partial replace: only supplied fields change.
	updates := make(map[string]interface{})
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.DueDate != nil {
		dueDate, err := validation.ParseDate(*input.DueDate)
		if err != nil {
			tx.Rollback()
			return models.Task{}, ErrValidation
		}
		updates["due_date"] = dueDate
	}

	if len(updates) > 0 {
		if err := tx.Model(&task).Updates(updates).Error; err != nil {
			tx.Rollback()
			return models.Task{}, err
		}
		if err := tx.First(&task, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			tx.Rollback()
			return models.Task{}, err
		}
	}

	event, err := models.NewEvent(
		string(broker.TaskUpdated),
		"task",
		task.UserID.String(),
		map[string]interface{}{
			"task_id": task.ID.String(),
			"user_id": task.UserID.String(),
			"title":   task.Title,
			"status":  string(task.Status),
		},
	)

	if err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	broker.PublishEvent(string(broker.TaskUpdated), event)

	return task, nil
}

func (s *TaskService) DeleteTask(db *database.Database, userID, id uuid.UUID) (models.Task, error) {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}

	var task models.Task
	if err := tx.First(&task, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	if err := tx.Delete(&task).Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	event, err := models.NewEvent(
		string(broker.TaskDeleted),
		"task",
		task.UserID.String(),
		map[string]interface{}{
			"task_id": task.ID.String(),
			"user_id": task.UserID.String(),
		},
	)

	if err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	broker.PublishEvent(string(broker.TaskDeleted), event)

	return task, nil
}
