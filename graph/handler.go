package graph

import (
	"net/http"

	"github.com/Rellinxe27/task-manager-oauth-week08/database"
	"github.com/Rellinxe27/task-manager-oauth-week08/middleware"
	"github.com/Rellinxe27/task-manager-oauth-week08/services"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
)

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// RegisterGraphQLRoutes mounts the GraphQL endpoint. Authentication is
// optional at the transport edge; resolvers enforce it with typed errors.
func RegisterGraphQLRoutes(router *gin.Engine, db *database.Database, taskService services.TaskServiceInterface, authService services.AuthServiceInterface) error {
	schema, err := NewSchema(db, taskService)
	if err != nil {
		return err
	}

	router.POST("/graphql", middleware.OptionalAuth(db, authService), func(c *gin.Context) {
		Serve(c, schema)
	})

	return nil
}

// Serve executes a single GraphQL request against the schema.
func Serve(c *gin.Context, schema graphql.Schema) {
	var req graphqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"message": "Invalid request body"}}})
		return
	}

	ctx := c.Request.Context()
	if user, ok := middleware.CurrentUser(c); ok {
		ctx = WithUser(ctx, user)
	}

	result := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})

	c.JSON(http.StatusOK, result)
}
