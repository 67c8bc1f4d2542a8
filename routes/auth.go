package routes

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/Rellinxe27/task-manager-oauth-week08/broker"
	"github.com/Rellinxe27/task-manager-oauth-week08/database"
	"github.com/Rellinxe27/task-manager-oauth-week08/middleware"
	"github.com/Rellinxe27/task-manager-oauth-week08/services"

	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

func RegisterAuthRoutes(router *gin.Engine, db *database.Database, authService services.AuthServiceInterface, provider services.OAuthProviderInterface) {
	group := router.Group("/auth")
	{
		group.GET("/google", func(c *gin.Context) { BeginGoogleLogin(c, provider) })
		group.GET("/google/callback", func(c *gin.Context) { GoogleCallback(c, db, authService, provider) })
		group.GET("/logout", func(c *gin.Context) { Logout(c, db, authService) })
		group.GET("/status", func(c *gin.Context) { AuthStatus(c, db, authService) })
		group.GET("/profile", func(c *gin.Context) { Profile(c, db, authService) })
		group.POST("/token", func(c *gin.Context) { IssueToken(c, db, authService) })
	}
}

// BeginGoogleLogin redirects to Google's consent screen with a random state
// value pinned in a short-lived cookie.
func BeginGoogleLogin(c *gin.Context, provider services.OAuthProviderInterface) {
	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error starting login"})
		return
	}

	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, provider.LoginURL(state))
}

// GoogleCallback completes the OAuth handshake: state check, code exchange,
// user upsert, session cookie, redirect.
func GoogleCallback(c *gin.Context, db *database.Database, authService services.AuthServiceInterface, provider services.OAuthProviderInterface) {
	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		c.Redirect(http.StatusTemporaryRedirect, "/login-failed")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusTemporaryRedirect, "/login-failed")
		return
	}

	profile, err := provider.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		log.Printf("OAuth code exchange failed: %v", err)
		c.Redirect(http.StatusTemporaryRedirect, "/login-failed")
		return
	}

	user, err := authService.Login(db, profile)
	if err != nil {
		log.Printf("Failed to upsert user on login: %v", err)
		c.Redirect(http.StatusTemporaryRedirect, "/login-failed")
		return
	}

	cookie, err := authService.CreateSession(db, user.ID)
	if err != nil {
		log.Printf("Failed to create session: %v", err)
		c.Redirect(http.StatusTemporaryRedirect, "/login-failed")
		return
	}

	broker.PublishEvent(string(broker.UserLoggedIn), gin.H{"user_id": user.ID.String()})

	maxAge := int(authService.SessionMaxAge().Seconds())
	c.SetCookie(middleware.SessionCookie, cookie, maxAge, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, "/dashboard")
}

func Logout(c *gin.Context, db *database.Database, authService services.AuthServiceInterface) {
	cookie, err := c.Cookie(middleware.SessionCookie)
	if err == nil && cookie != "" {
		if err := authService.Logout(db, cookie); err != nil {
			log.Printf("Failed to delete session on logout: %v", err)
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

func AuthStatus(c *gin.Context, db *database.Database, authService services.AuthServiceInterface) {
	user, ok := middleware.ResolveUser(c, db, authService)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"authenticated": false,
			"message":       "Not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"authenticated": true,
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"displayName": user.DisplayName,
			"picture":     user.Picture,
		},
	})
}

func Profile(c *gin.Context, db *database.Database, authService services.AuthServiceInterface) {
	user, ok := middleware.ResolveUser(c, db, authService)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// IssueToken exchanges an authenticated session for a Bearer JWT, for clients
// that cannot carry cookies.
func IssueToken(c *gin.Context, db *database.Database, authService services.AuthServiceInterface) {
	user, ok := middleware.ResolveUser(c, db, authService)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	tokenString, err := authService.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error issuing token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": tokenString})
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
