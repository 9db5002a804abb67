package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sa-023/ticketing-project-rest-23/internal/database"
	"github.com/sa-023/ticketing-project-rest-23/internal/dto"
	"github.com/sa-023/ticketing-project-rest-23/internal/models"
	"github.com/sa-023/ticketing-project-rest-23/internal/repository"
	"github.com/sa-023/ticketing-project-rest-23/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type userTestEnv struct {
	db             *gorm.DB
	handler        *UserHandler
	userService    *services.UserService
	projectService *services.ProjectService
	taskService    *services.TaskService
}

func setupUserTestEnv(t *testing.T) userTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Project{},
		&models.Task{},
	)
	require.NoError(t, err)
	require.NoError(t, database.SeedRoles(db))

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo)
	projectService := services.NewProjectService(projectRepo, userRepo, taskService)
	userService := services.NewUserService(userRepo, roleRepo, projectService, taskService, services.NoopIdentityProvider{})
	handler := NewUserHandler(userService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return userTestEnv{
		db:             db,
		handler:        handler,
		userService:    userService,
		projectService: projectService,
		taskService:    taskService,
	}
}

func (env userTestEnv) registerUser(t *testing.T, username, role string) *dto.UserDTO {
	t.Helper()
	created, err := env.userService.Create(context.Background(), dto.UserDTO{
		FirstName: "Test",
		LastName:  "User",
		UserName:  username,
		PassWord:  "Abc1",
		Role:      role,
	})
	require.NoError(t, err)
	return created
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.ResponseWrapper {
	t.Helper()
	var envelope dto.ResponseWrapper
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestUserHandler_CreateUser(t *testing.T) {
	env := setupUserTestEnv(t)

	r := gin.New()
	r.POST("/api/v1/user", env.handler.CreateUser)

	body, err := json.Marshal(map[string]any{
		"first_name": "John",
		"last_name":  "Doe",
		"user_name":  "john@employee.com",
		"pass_word":  "Abc1",
		"role":       "Employee",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.True(t, envelope.Success)
	assert.Equal(t, "User is successfully created", envelope.Message)

	// The envelope never carries the credential back
	assert.NotContains(t, w.Body.String(), "Abc1")
	assert.NotContains(t, w.Body.String(), "pass_word")
}

func TestUserHandler_GetUserByUserName_NotFound(t *testing.T) {
	env := setupUserTestEnv(t)

	r := gin.New()
	r.GET("/api/v1/user/:username", env.handler.GetUserByUserName)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/nobody@nowhere.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.False(t, envelope.Success)
	assert.Equal(t, http.StatusNotFound, envelope.Code)
}

func TestUserHandler_DeleteUser_ConflictEnvelope(t *testing.T) {
	env := setupUserTestEnv(t)
	manager := env.registerUser(t, "mike@manager.com", "Manager")

	_, err := env.projectService.Create(dto.ProjectDTO{
		ProjectName:     "Billing rewrite",
		ProjectCode:     "PR001",
		AssignedManager: manager.UserName,
	})
	require.NoError(t, err)

	r := gin.New()
	r.DELETE("/api/v1/user/:username", env.handler.DeleteUser)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/user/mike@manager.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.False(t, envelope.Success)
	assert.Equal(t, "User can not be deleted", envelope.Message)
	assert.Equal(t, http.StatusConflict, envelope.Code)
}

func TestUserHandler_DeleteUser_Succeeds(t *testing.T) {
	env := setupUserTestEnv(t)
	env.registerUser(t, "root@admin.com", "Admin")

	r := gin.New()
	r.DELETE("/api/v1/user/:username", env.handler.DeleteUser)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/user/root@admin.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.True(t, envelope.Success)
	assert.Equal(t, "User is successfully deleted", envelope.Message)
}
