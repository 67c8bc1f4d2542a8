package graph

import (
	"errors"

	"github.com/Rellinxe27/task-manager-oauth-week08/database"
	"github.com/Rellinxe27/task-manager-oauth-week08/services"
	"github.com/Rellinxe27/task-manager-oauth-week08/validation"

	"github.com/graphql-go/graphql"
)

func resolveMe(p graphql.ResolveParams) (interface{}, error) {
	user, ok := UserFromContext(p.Context)
	if !ok {
		return nil, errUnauthenticated()
	}
	return user, nil
}

func resolveTasks(db *database.Database, taskService services.TaskServiceInterface) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		user, ok := UserFromContext(p.Context)
		if !ok {
			return nil, errUnauthenticated()
		}

		tasks, err := taskService.GetTasks(db, user.ID)
		if err != nil {
			return nil, errInternal("Error retrieving tasks")
		}

		return map[string]interface{}{
			"success": true,
			"count":   len(tasks),
			"data":    tasks,
		}, nil
	}
}

func resolveTask(db *database.Database, taskService services.TaskServiceInterface) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		user, ok := UserFromContext(p.Context)
		if !ok {
			return nil, errUnauthenticated()
		}

		id, err := validation.ParseTaskID(p.Args["id"].(string))
		if err != nil {
			return nil, errBadInput(err.Error())
		}

		task, err := taskService.GetTaskById(db, user.ID, id)
		if err != nil {
			if errors.Is(err, services.ErrTaskNotFound) {
				return nil, errNotFound("Task not found or access denied")
			}
			return nil, errInternal("Error retrieving task")
		}

		return map[string]interface{}{
			"success": true,
			"data":    task,
		}, nil
	}
}

func resolveCreateTask(db *database.Database, taskService services.TaskServiceInterface) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		user, ok := UserFromContext(p.Context)
		if !ok {
			return nil, errUnauthenticated()
		}

		input := taskInputFromArgs(p.Args["input"].(map[string]interface{}))
		if err := validation.ValidateCreate(input); err != nil {
			return nil, errBadInput(err.Error())
		}

		task, err := taskService.CreateTask(db, user.ID, input)
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				return nil, errBadInput("Validation error")
			}
			return nil, errInternal("Error creating task")
		}

		return map[string]interface{}{
			"success": true,
			"message": "Task created successfully",
			"data":    task,
		}, nil
	}
}

func resolveUpdateTask(db *database.Database, taskService services.TaskServiceInterface) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		user, ok := UserFromContext(p.Context)
		if !ok {
			return nil, errUnauthenticated()
		}

		id, err := validation.ParseTaskID(p.Args["id"].(string))
		if err != nil {
			return nil, errBadInput(err.Error())
		}

		input := taskInputFromArgs(p.Args["input"].(map[string]interface{}))
		if err := validation.ValidateUpdate(input); err != nil {
			return nil, errBadInput(err.Error())
		}

		task, err := taskService.UpdateTask(db, user.ID, id, input)
		if err != nil {
			if errors.Is(err, services.ErrTaskNotFound) {
				return nil, errNotFound("Task not found or access denied")
			}
			if errors.Is(err, services.ErrValidation) {
				return nil, errBadInput("Validation error")
			}
			return nil, errInternal("Error updating task")
		}

		return map[string]interface{}{
			"success": true,
			"message": "Task updated successfully",
			"data":    task,
		}, nil
	}
}

func resolveDeleteTask(db *database.Database, taskService services.TaskServiceInterface) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		user, ok := UserFromContext(p.Context)
		if !ok {
			return nil, errUnauthenticated()
		}

		id, err := validation.ParseTaskID(p.Args["id"].(string))
		if err != nil {
			return nil, errBadInput(err.Error())
		}

		task, err := taskService.DeleteTask(db, user.ID, id)
		if err != nil {
			if errors.Is(err, services.ErrTaskNotFound) {
				return nil, errNotFound("Task not found or access denied")
			}
			return nil, errInternal("Error deleting task")
		}

		return map[string]interface{}{
			"success": true,
			"message": "Task deleted successfully",
			"data":    task,
		}, nil
	}
}

// taskInputFromArgs converts a coerced GraphQL input object into the shared
// validation payload. The status enum has already been translated to the
// internal hyphenated form by taskStatusEnum.
func taskInputFromArgs(args map[string]interface{}) validation.TaskInput {
	var input validation.TaskInput

	if v, ok := args["title"].(string); ok {
		input.Title = &v
	}
	if v, ok := args["description"].(string); ok {
		input.Description = &v
	}
	if v, ok := args["status"].(string); ok {
		input.Status = &v
	}
	if v, ok := args["dueDate"].(string); ok {
		input.DueDate = &v
	}

	return input
}
