package routes

import (
	"fmt"
	"net/http"

	"github.com/Rellinxe27/task-manager-oauth-week08/database"
	"github.com/Rellinxe27/task-manager-oauth-week08/middleware"
	"github.com/Rellinxe27/task-manager-oauth-week08/services"

	"github.com/gin-gonic/gin"
)

func RegisterHomeRoutes(router *gin.Engine, db *database.Database, authService services.AuthServiceInterface) {
	router.GET("/", Home)
	router.GET("/dashboard", func(c *gin.Context) { Dashboard(c, db, authService) })
	router.GET("/login-failed", LoginFailed)
}

func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Task Manager API with Google OAuth, REST and GraphQL",
		"endpoints": gin.H{
			"graphql": "/graphql",
			"rest": gin.H{
				"auth":  "/auth",
				"tasks": "/tasks",
			},
		},
		"authentication": gin.H{
			"login":   "/auth/google",
			"logout":  "/auth/logout",
			"status":  "/auth/status",
			"profile": "/auth/profile",
		},
	})
}

func Dashboard(c *gin.Context, db *database.Database, authService services.AuthServiceInterface) {
	user, ok := middleware.ResolveUser(c, db, authService)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success":  false,
			"message":  "Please login",
			"loginUrl": "/auth/google",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Welcome %s!", user.DisplayName),
		"user": gin.H{
			"email":       user.Email,
			"displayName": user.DisplayName,
			"picture":     user.Picture,
		},
		"endpoints": gin.H{
			"graphql": "/graphql",
			"tasks":   "/tasks",
			"profile": "/auth/profile",
			"logout":  "/auth/logout",
		},
	})
}

func LoginFailed(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success":  false,
		"message":  "Login failed",
		"loginUrl": "/auth/google",
	})
}
