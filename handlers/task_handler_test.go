package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/medialoc/crm-go/models"
	"github.com/medialoc/crm-go/repositories"
	"github.com/medialoc/crm-go/repositories/mock_repositories"
	"github.com/medialoc/crm-go/services"
)

func setupTaskHandler(t *testing.T) (*TaskHandler, *mock_repositories.MockTaskRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTask := mock_repositories.NewMockTaskRepo(ctrl)
	repos := &repositories.Repos{Task: mockTask}

	return NewTaskHandler(services.NewTaskService(repos)), mockTask
}

func taskRequest(id string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/tasks/"+id, nil)
	c.Params = gin.Params{{Key: "id", Value: id}}
	return c, w
}

func TestGetTaskByID(t *testing.T) {
	h, mockTask := setupTaskHandler(t)

	mockTask.EXPECT().GetTaskByID(uint(8)).Return(models.Task{ID: 8, TaskName: "Record session"}, nil)

	c, w := taskRequest("8")
	h.GetTaskByID(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Record session") {
		t.Fatalf("task missing from body: %s", w.Body.String())
	}
}

func TestGetTaskByID_NotFound(t *testing.T) {
	h, mockTask := setupTaskHandler(t)

	mockTask.EXPECT().GetTaskByID(uint(8)).Return(models.Task{}, errors.New("record not found"))

	c, w := taskRequest("8")
	h.GetTaskByID(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetTaskByID_BadID(t *testing.T) {
	h, _ := setupTaskHandler(t)

	c, w := taskRequest("not-a-number")
	h.GetTaskByID(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
