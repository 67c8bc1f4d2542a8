package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Rellinxe27/task-manager-oauth-week08/database"
	"github.com/Rellinxe27/task-manager-oauth-week08/middleware"
	"github.com/Rellinxe27/task-manager-oauth-week08/models"
	"github.com/Rellinxe27/task-manager-oauth-week08/services"
	"github.com/Rellinxe27/task-manager-oauth-week08/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const (
	knownTaskID  = "123e4567-e89b-12d3-a456-426614174000"
	validSession = "sessid.sessecret"
)

var testUser = models.User{
	ID:          uuid.Must(uuid.Parse("90a12345-f12a-98c4-a456-513432930000")),
	GoogleID:    "google-123",
	Email:       "tester@example.com",
	DisplayName: "Tester",
}

// MockAuthService accepts the fixed session cookie and nothing else.
type MockAuthService struct{}

func (m *MockAuthService) Login(db *database.Database, profile services.GoogleProfile) (models.User, error) {
	user := testUser
	user.GoogleID = profile.GoogleID
	user.Email = profile.Email
	user.DisplayName = profile.DisplayName
	return user, nil
}

func (m *MockAuthService) CreateSession(db *database.Database, userID uuid.UUID) (string, error) {
	return validSession, nil
}

func (m *MockAuthService) CurrentUser(db *database.Database, cookie string) (models.User, error) {
	if cookie == validSession {
		return testUser, nil
	}
	return models.User{}, services.ErrSessionNotFound
}

func (m *MockAuthService) Logout(db *database.Database, cookie string) error {
	if cookie == validSession {
		return nil
	}
	return services.ErrSessionNotFound
}

func (m *MockAuthService) IssueToken(user models.User) (string, error) {
	return "issued-token", nil
}

func (m *MockAuthService) ValidateToken(tokenString string) (*services.JWTClaims, error) {
	return nil, services.ErrInvalidToken
}

func (m *MockAuthService) SessionMaxAge() time.Duration {
	return 24 * time.Hour
}

type MockTaskService struct {
	lastInput validation.TaskInput
}

func (m *MockTaskService) GetTasks(db *database.Database, userID uuid.UUID) ([]models.Task, error) {
	return []models.Task{
		{ID: uuid.New(), UserID: userID, Title: "Test Task 2", Status: models.TaskStatusCompleted},
		{ID: uuid.New(), UserID: userID, Title: "Test Task", Status: models.TaskStatusPending},
	}, nil
}

func (m *MockTaskService) GetTaskById(db *database.Database, userID, id uuid.UUID) (models.Task, error) {
	if id.String() == knownTaskID && userID == testUser.ID {
		return models.Task{ID: id, UserID: userID, Title: "Test Task", Status: models.TaskStatusPending}, nil
	}
	return models.Task{}, services.ErrTaskNotFound
}

func (m *MockTaskService) CreateTask(db *database.Database, userID uuid.UUID, input validation.TaskInput) (models.Task, error) {
	m.lastInput = input

	status := models.TaskStatusPending
	if input.Status != nil {
		status = models.TaskStatus(*input.Status)
	}
	dueDate, _ := validation.ParseDate(*input.DueDate)

	return models.Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       *input.Title,
		Description: *input.Description,
		Status:      status,
		DueDate:     dueDate,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func (m *MockTaskService) UpdateTask(db *database.Database, userID, id uuid.UUID, input validation.TaskInput) (models.Task, error) {
	if id.String() != knownTaskID || userID != testUser.ID {
		return models.Task{}, services.ErrTaskNotFound
	}
	m.lastInput = input

	task := models.Task{ID: id, UserID: userID, Title: "Test Task", Status: models.TaskStatusPending}
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Status != nil {
		task.Status = models.TaskStatus(*input.Status)
	}
	return task, nil
}

func (m *MockTaskService) DeleteTask(db *database.Database, userID, id uuid.UUID) (models.Task, error) {
	if id.String() == knownTaskID && userID == testUser.ID {
		return models.Task{ID: id, UserID: userID, Title: "Test Task"}, nil
	}
	return models.Task{}, services.ErrTaskNotFound
}

func setupTaskRouter() (*gin.Engine, *MockTaskService) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mockService := &MockTaskService{}
	RegisterTaskRoutes(router, &database.Database{}, mockService, &MockAuthService{})
	return router, mockService
}

func authedRequest(method, target string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewBuffer(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: validSession})
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestTaskRoutes_RequireAuthentication(t *testing.T) {
	router, _ := setupTaskRouter()

	for _, tc := range []struct{ method, target string }{
		{"GET", "/tasks"},
		{"POST", "/tasks"},
		{"GET", "/tasks/" + knownTaskID},
		{"PUT", "/tasks/" + knownTaskID},
		{"DELETE", "/tasks/" + knownTaskID},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.target, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.target)

		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "/auth/google", body["loginUrl"])
	}
}

func TestGetTasks(t *testing.T) {
	router, _ := setupTaskRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("GET", "/tasks", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])
	assert.Contains(t, w.Body.String(), "Test Task")
	assert.Contains(t, w.Body.String(), "Test Task 2")
}

func TestGetTaskById(t *testing.T) {
	router, _ := setupTaskRouter()

	t.Run("Malformed ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("GET", "/tasks/zzzz", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid task ID format", decodeBody(t, w)["message"])
	})

	t.Run("Task Not Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("GET", "/tasks/123e4567-e89b-12d3-a456-426614174001", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Task not found or access denied", decodeBody(t, w)["message"])
	})

	t.Run("Task Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("GET", "/tasks/"+knownTaskID, nil))
		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, knownTaskID, data["id"])
	})
}

func TestCreateTask(t *testing.T) {
	router, mockService := setupTaskRouter()

	t.Run("Defaults Status To Pending", func(t *testing.T) {
		w := httptest.NewRecorder()
		payload := []byte(`{"title":"Buy milk","description":"2%","dueDate":"2025-01-01"}`)
		router.ServeHTTP(w, authedRequest("POST", "/tasks", payload))

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Task created successfully", body["message"])

		data := body["data"].(map[string]interface{})
		assert.Equal(t, "pending", data["status"])
	})

	t.Run("Missing Required Fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("POST", "/tasks", []byte(`{"title":"only a title"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Please provide title, description, and dueDate", decodeBody(t, w)["message"])
	})

	t.Run("Title Too Long", func(t *testing.T) {
		w := httptest.NewRecorder()
		payload, _ := json.Marshal(gin.H{
			"title":       strings.Repeat("a", 101),
			"description": "desc",
			"dueDate":     "2025-01-01",
		})
		router.ServeHTTP(w, authedRequest("POST", "/tasks", payload))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Title cannot exceed 100 characters", decodeBody(t, w)["message"])
	})

	t.Run("Whitespace Title Rejected Like Empty", func(t *testing.T) {
		w := httptest.NewRecorder()
		payload := []byte(`{"title":"  ","description":"desc","dueDate":"2025-01-01"}`)
		router.ServeHTTP(w, authedRequest("POST", "/tasks", payload))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Title cannot be empty", decodeBody(t, w)["message"])
	})

	t.Run("Validation Never Reaches The Store", func(t *testing.T) {
		mockService.lastInput = validation.TaskInput{}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("POST", "/tasks", []byte(`{"title":"x"}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, mockService.lastInput.Title)
	})
}

func TestUpdateTask(t *testing.T) {
	router, mockService := setupTaskRouter()

	t.Run("Task Not Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		payload := []byte(`{"title":"Updated Task"}`)
		router.ServeHTTP(w, authedRequest("PUT", "/tasks/123e4567-e89b-12d3-a456-426614174001", payload))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Task not found or access denied", decodeBody(t, w)["message"])
	})

	t.Run("Invalid Status Value", func(t *testing.T) {
		w := httptest.NewRecorder()
		payload := []byte(`{"status":"done"}`)
		router.ServeHTTP(w, authedRequest("PUT", "/tasks/"+knownTaskID, payload))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Status must be: pending, in-progress, or completed", decodeBody(t, w)["message"])
	})

	t.Run("Status Only Update", func(t *testing.T) {
		w := httptest.NewRecorder()
		payload := []byte(`{"status":"completed"}`)
		router.ServeHTTP(w, authedRequest("PUT", "/tasks/"+knownTaskID, payload))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Task updated successfully", body["message"])

		data := body["data"].(map[string]interface{})
		assert.Equal(t, "completed", data["status"])
		assert.Equal(t, "Test Task", data["title"])

		// Only the supplied field travels to the store.
		assert.Nil(t, mockService.lastInput.Title)
		assert.Nil(t, mockService.lastInput.Description)
		assert.Nil(t, mockService.lastInput.DueDate)
		assert.NotNil(t, mockService.lastInput.Status)
	})
}

func TestDeleteTask(t *testing.T) {
	router, _ := setupTaskRouter()

	t.Run("Malformed ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("DELETE", "/tasks/not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Task Not Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("DELETE", "/tasks/123e4567-e89b-12d3-a456-426614174001", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Task not found or access denied", decodeBody(t, w)["message"])
	})

	t.Run("Task Deleted", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest("DELETE", "/tasks/"+knownTaskID, nil))
		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Task deleted successfully", body["message"])
		assert.NotNil(t, body["data"])
	})
}

var _ services.TaskServiceInterface = (*MockTaskService)(nil)
var _ services.AuthServiceInterface = (*MockAuthService)(nil)
