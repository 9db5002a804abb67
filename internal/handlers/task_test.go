package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sa-023/ticketing-project-rest-23/internal/constants"
	"github.com/sa-023/ticketing-project-rest-23/internal/dto"
	"github.com/sa-023/ticketing-project-rest-23/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// asPrincipal injects an authenticated principal the way the session
// middleware would after a successful login.
func asPrincipal(username, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyUsername, username)
		c.Set(constants.ContextKeyRole, role)
		c.Next()
	}
}

func TestTaskHandler_EmployeeQueuesAreScopedToPrincipal(t *testing.T) {
	env := setupUserTestEnv(t)
	manager := env.registerUser(t, "mike@manager.com", "Manager")
	env.registerUser(t, "john@employee.com", "Employee")
	env.registerUser(t, "anna@employee.com", "Employee")

	_, err := env.projectService.Create(dto.ProjectDTO{
		ProjectName:     "Billing rewrite",
		ProjectCode:     "PR001",
		AssignedManager: manager.UserName,
	})
	require.NoError(t, err)

	johnPending, err := env.taskService.Create(dto.TaskDTO{
		ProjectCode:      "PR001",
		AssignedEmployee: "john@employee.com",
		TaskSubject:      "Wire invoices",
	})
	require.NoError(t, err)

	johnDone, err := env.taskService.Create(dto.TaskDTO{
		ProjectCode:      "PR001",
		AssignedEmployee: "john@employee.com",
		TaskSubject:      "Close ledger",
	})
	require.NoError(t, err)

	complete := models.StatusComplete
	_, err = env.taskService.UpdateStatus(dto.TaskDTO{ID: johnDone.ID, TaskStatus: &complete})
	require.NoError(t, err)

	_, err = env.taskService.Create(dto.TaskDTO{
		ProjectCode:      "PR001",
		AssignedEmployee: "anna@employee.com",
		TaskSubject:      "Review contracts",
	})
	require.NoError(t, err)

	handler := NewTaskHandler(env.taskService)
	r := gin.New()
	r.GET("/api/v1/task/employee/pending-tasks", asPrincipal("john@employee.com", "Employee"), handler.GetPendingTasks)
	r.GET("/api/v1/task/employee/archive", asPrincipal("john@employee.com", "Employee"), handler.GetArchivedTasks)

	// Pending queue holds only john's non-complete task
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/task/employee/pending-tasks", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool          `json:"success"`
		Data    []dto.TaskDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, johnPending.ID, envelope.Data[0].ID)
	assert.Equal(t, "john@employee.com", envelope.Data[0].AssignedEmployee)

	// Archive holds only john's completed task
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/task/employee/archive", nil))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, johnDone.ID, envelope.Data[0].ID)
}

func TestTaskHandler_GetPendingTasks_WithoutPrincipal(t *testing.T) {
	env := setupUserTestEnv(t)
	handler := NewTaskHandler(env.taskService)

	r := gin.New()
	r.GET("/api/v1/task/employee/pending-tasks", handler.GetPendingTasks)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/task/employee/pending-tasks", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTaskHandler_UpdateTaskStatus_RequiresStatus(t *testing.T) {
	env := setupUserTestEnv(t)
	manager := env.registerUser(t, "mike@manager.com", "Manager")
	env.registerUser(t, "john@employee.com", "Employee")

	_, err := env.projectService.Create(dto.ProjectDTO{
		ProjectName:     "Billing rewrite",
		ProjectCode:     "PR001",
		AssignedManager: manager.UserName,
	})
	require.NoError(t, err)

	task, err := env.taskService.Create(dto.TaskDTO{
		ProjectCode:      "PR001",
		AssignedEmployee: "john@employee.com",
		TaskSubject:      "Wire invoices",
	})
	require.NoError(t, err)

	handler := NewTaskHandler(env.taskService)
	r := gin.New()
	r.PUT("/api/v1/task/employee/update", handler.UpdateTaskStatus)

	body := []byte(fmt.Sprintf(`{"id":%d}`, task.ID))
	req := httptest.NewRequest(http.MethodPut, "/api/v1/task/employee/update", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
