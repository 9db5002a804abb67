package dto

import (
	"time"

	"github.com/sa-023/ticketing-project-rest-23/internal/models"
)

// ProjectDTO represents a project at the API boundary. The two task counters
// are read-only: they are computed from the task population on every read and
// ignored on input.
type ProjectDTO struct {
	ID                   uint64        `json:"id,omitempty"`
	ProjectName          string        `json:"project_name"`
	ProjectCode          string        `json:"project_code"`
	AssignedManager      string        `json:"assigned_manager"`
	StartDate            *time.Time    `json:"start_date,omitempty"`
	EndDate              *time.Time    `json:"end_date,omitempty"`
	ProjectDetail        string        `json:"project_detail"`
	ProjectStatus        models.Status `json:"project_status"`
	CompletedTaskCounts  int64         `json:"completed_task_counts"`
	UnfinishedTaskCounts int64         `json:"unfinished_task_counts"`
}

// ToProjectDTO converts a Project model to ProjectDTO with the derived counters.
func ToProjectDTO(project models.Project, completed, unfinished int64) ProjectDTO {
	return ProjectDTO{
		ID:                   project.ID,
		ProjectName:          project.ProjectName,
		ProjectCode:          project.ProjectCode,
		AssignedManager:      project.AssignedManager.UserName,
		StartDate:            project.StartDate,
		EndDate:              project.EndDate,
		ProjectDetail:        project.ProjectDetail,
		ProjectStatus:        project.ProjectStatus,
		CompletedTaskCounts:  completed,
		UnfinishedTaskCounts: unfinished,
	}
}

// ToProjectEntity converts a ProjectDTO to a Project model. The manager must
// be resolved by the caller from the username reference; identity is left
// unset and comes from the prior record on updates.
func ToProjectEntity(dto ProjectDTO, manager models.User) models.Project {
	return models.Project{
		ProjectName:     dto.ProjectName,
		ProjectCode:     dto.ProjectCode,
		ManagerID:       manager.ID,
		StartDate:       dto.StartDate,
		EndDate:         dto.EndDate,
		ProjectDetail:   dto.ProjectDetail,
		ProjectStatus:   dto.ProjectStatus,
		AssignedManager: manager,
	}
}
