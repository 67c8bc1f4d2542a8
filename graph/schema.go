package graph

import (
	"time"

	"github.com/Rellinxe27/task-manager-oauth-week08/database"
	"github.com/Rellinxe27/task-manager-oauth-week08/models"
	"github.com/Rellinxe27/task-manager-oauth-week08/services"

	"github.com/graphql-go/graphql"
)

// taskStatusEnum exposes the underscore form (in_progress) externally while
// the stored value stays hyphenated (in-progress). The translation lives
// entirely in this enum; resolvers pass the internal form through it.
var taskStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "TaskStatus",
	Values: graphql.EnumValueConfigMap{
		"pending":     &graphql.EnumValueConfig{Value: string(models.TaskStatusPending)},
		"in_progress": &graphql.EnumValueConfig{Value: string(models.TaskStatusInProgress)},
		"completed":   &graphql.EnumValueConfig{Value: string(models.TaskStatusCompleted)},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.User).ID.String(), nil
			},
		},
		"googleId":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"displayName": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"firstName":   &graphql.Field{Type: graphql.String},
		"lastName":    &graphql.Field{Type: graphql.String},
		"picture":     &graphql.Field{Type: graphql.String},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.User).CreatedAt.Format(time.RFC3339), nil
			},
		},
		"lastLogin": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.User).LastLogin.Format(time.RFC3339), nil
			},
		},
	},
})

var taskType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Task",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Task).ID.String(), nil
			},
		},
		"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"status": &graphql.Field{
			Type: graphql.NewNonNull(taskStatusEnum),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(models.Task).Status), nil
			},
		},
		"dueDate": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Task).DueDate.Format(time.RFC3339), nil
			},
		},
		"userId": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Task).UserID.String(), nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Task).CreatedAt.Format(time.RFC3339), nil
			},
		},
	},
})

var createTaskInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateTaskInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"status":      &graphql.InputObjectFieldConfig{Type: taskStatusEnum},
		"dueDate":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var updateTaskInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateTaskInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"status":      &graphql.InputObjectFieldConfig{Type: taskStatusEnum},
		"dueDate":     &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var taskResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TaskResponse",
	Fields: graphql.Fields{
		"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"message": &graphql.Field{Type: graphql.String},
		"data":    &graphql.Field{Type: taskType},
	},
})

var tasksResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TasksResponse",
	Fields: graphql.Fields{
		"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"count":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"data":    &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(taskType)))},
	},
})

// NewSchema builds the executable schema over the same services the REST
// surface uses.
func NewSchema(db *database.Database, taskService services.TaskServiceInterface) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type:    userType,
				Resolve: resolveMe,
			},
			"tasks": &graphql.Field{
				Type:    graphql.NewNonNull(tasksResponseType),
				Resolve: resolveTasks(db, taskService),
			},
			"task": &graphql.Field{
				Type: graphql.NewNonNull(taskResponseType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: resolveTask(db, taskService),
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createTask": &graphql.Field{
				Type: graphql.NewNonNull(taskResponseType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createTaskInput)},
				},
				Resolve: resolveCreateTask(db, taskService),
			},
			"updateTask": &graphql.Field{
				Type: graphql.NewNonNull(taskResponseType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateTaskInput)},
				},
				Resolve: resolveUpdateTask(db, taskService),
			},
			"deleteTask": &graphql.Field{
				Type: graphql.NewNonNull(taskResponseType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: resolveDeleteTask(db, taskService),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
