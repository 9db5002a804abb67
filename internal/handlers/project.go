package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sa-023/ticketing-project-rest-23/internal/dto"
	apierrors "github.com/sa-023/ticketing-project-rest-23/internal/errors"
	"github.com/sa-023/ticketing-project-rest-23/internal/services"
)

// ProjectHandler exposes the project lifecycle operations.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// GetProjects returns all projects with live task counters
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.projectService.ListAll()
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to retrieve projects")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Projects are successfully retrieved", http.StatusOK, projects))
}

// GetProjectByCode returns a single project with live task counters
func (h *ProjectHandler) GetProjectByCode(c *gin.Context) {
	project, err := h.projectService.FindByCode(c.Param("code"))
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to retrieve project")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Project is successfully retrieved", http.StatusOK, project))
}

// CreateProject creates a project with status OPEN
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.ProjectDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Create(req)
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, dto.OK("Project is successfully created", http.StatusCreated, project))
}

// UpdateProject updates a project; the project code is the lookup key
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req dto.ProjectDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Update(req)
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to update project")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Project is successfully updated", http.StatusOK, project))
}

// CompleteProject completes a project and cascades over its tasks
func (h *ProjectHandler) CompleteProject(c *gin.Context) {
	project, err := h.projectService.Complete(c.Param("code"))
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to complete project")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Project is successfully completed", http.StatusOK, project))
}

// DeleteProject soft-deletes a project and cascades over its tasks
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectService.Delete(c.Param("code")); err != nil {
		apierrors.HandleServiceError(c, err, "Failed to delete project")
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Project is successfully deleted", http.StatusOK))
}
