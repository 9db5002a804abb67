package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sa-023/ticketing-project-rest-23/internal/dto"
	apierrors "github.com/sa-023/ticketing-project-rest-23/internal/errors"
	"github.com/sa-023/ticketing-project-rest-23/internal/middleware"
	"github.com/sa-023/ticketing-project-rest-23/internal/models"
	"github.com/sa-023/ticketing-project-rest-23/internal/services"
)

// TaskHandler exposes the task lifecycle operations. Manager routes cover
// CRUD; employee routes are scoped to the authenticated principal's queue.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// GetTasks returns all non-deleted tasks
func (h *TaskHandler) GetTasks(c *gin.Context) {
	tasks, err := h.taskService.ListAll()
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to retrieve tasks")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Tasks are successfully retrieved", http.StatusOK, tasks))
}

// GetTaskByID returns a single task
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task id")
		return
	}

	task, err := h.taskService.FindByID(id)
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to retrieve task")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Task is successfully retrieved", http.StatusOK, task))
}

// CreateTask creates a task with status OPEN and the assigned date set to now
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.TaskDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(req)
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, dto.OK("Task is successfully created", http.StatusCreated, task))
}

// UpdateTask updates a task; id, assigned date, and an omitted status are
// preserved from the prior record
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.TaskDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Update(req)
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Task is successfully updated", http.StatusOK, task))
}

// DeleteTask soft-deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task id")
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		apierrors.HandleServiceError(c, err, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Task is successfully deleted", http.StatusOK))
}

// GetPendingTasks returns the authenticated employee's tasks that are not COMPLETE
func (h *TaskHandler) GetPendingTasks(c *gin.Context) {
	username, _, ok := middleware.GetPrincipal(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	tasks, err := h.taskService.ListAllByStatusIsNot(models.StatusComplete, username)
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to retrieve tasks")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Tasks are successfully retrieved", http.StatusOK, tasks))
}

// GetArchivedTasks returns the authenticated employee's COMPLETE tasks
func (h *TaskHandler) GetArchivedTasks(c *gin.Context) {
	username, _, ok := middleware.GetPrincipal(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	tasks, err := h.taskService.ListAllByStatus(models.StatusComplete, username)
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to retrieve tasks")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Tasks are successfully retrieved", http.StatusOK, tasks))
}

// UpdateTaskStatus overwrites only the status of a task
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	var req dto.TaskDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateStatus(req)
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to update task status")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Task is successfully updated", http.StatusOK, task))
}
