package middleware

import (
	"net/http"

	"github.com/Rellinxe27/task-manager-oauth-week08/database"
	"github.com/Rellinxe27/task-manager-oauth-week08/models"
	"github.com/Rellinxe27/task-manager-oauth-week08/services"
	"github.com/Rellinxe27/task-manager-oauth-week08/utils/token"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the login session cookie.
const SessionCookie = "tm_session"

// AuthRequired gates a route group behind an authenticated identity. It
// accepts the session cookie set by the OAuth callback, or a Bearer JWT
// issued by /auth/token for programmatic access.
func AuthRequired(db *database.Database, authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := ResolveUser(c, db, authService)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":  false,
				"message":  "Authentication required. Please login first.",
				"loginUrl": "/auth/google",
			})
			return
		}

		c.Set("currentUser", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// OptionalAuth resolves the identity when present but never rejects; the
// GraphQL surface reports UNAUTHENTICATED per-resolver instead of at the
// transport edge.
func OptionalAuth(db *database.Database, authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := ResolveUser(c, db, authService); ok {
			c.Set("currentUser", user)
			c.Set("userID", user.ID)
		}
		c.Next()
	}
}

// ResolveUser tries the session cookie first, then the Authorization header.
func ResolveUser(c *gin.Context, db *database.Database, authService services.AuthServiceInterface) (models.User, bool) {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		if user, err := authService.CurrentUser(db, cookie); err == nil {
			return user, true
		}
	}

	tokenString, err := token.ExtractBearerToken(c)
	if err != nil {
		return models.User{}, false
	}

	claims, err := authService.ValidateToken(tokenString)
	if err != nil {
		return models.User{}, false
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", claims.UserID).Error; err != nil {
		return models.User{}, false
	}

	return user, true
}

// CurrentUser pulls the authenticated user stored by AuthRequired or
// OptionalAuth out of the request context.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get("currentUser")
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
