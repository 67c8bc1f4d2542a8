package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rellinxe27/task-manager-oauth-week08/broker"
	"github.com/Rellinxe27/task-manager-oauth-week08/config"
	"github.com/Rellinxe27/task-manager-oauth-week08/database"
	"github.com/Rellinxe27/task-manager-oauth-week08/graph"
	"github.com/Rellinxe27/task-manager-oauth-week08/middleware"
	"github.com/Rellinxe27/task-manager-oauth-week08/routes"
	"github.com/Rellinxe27/task-manager-oauth-week08/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Event publishing is best-effort; the API works without a broker.
	if err := broker.InitProducer(cfg.NatsURL); err != nil {
		log.Printf("Warning: Failed to initialize NATS producer: %v", err)
		log.Println("The application will continue, but lifecycle events will not be published")
	} else {
		defer broker.CloseProducer()
	}

	authService := services.NewAuthService(cfg.JWTSecret, cfg.JWTExpirationHours, cfg.SessionMaxAgeHours)
	taskService := services.NewTaskService()
	oauthProvider := services.NewGoogleOAuthProvider(services.GoogleOAuthConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleCallbackURL,
	})

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	routes.RegisterHomeRoutes(router, db, authService)
	routes.RegisterAuthRoutes(router, db, authService, oauthProvider)
	routes.RegisterTaskRoutes(router, db, taskService, authService)

	if err := graph.RegisterGraphQLRoutes(router, db, taskService, authService); err != nil {
		log.Fatalf("Failed to build GraphQL schema: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		broker.CloseProducer()
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
