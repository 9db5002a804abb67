package dto

import (
	"time"

	"github.com/sa-023/ticketing-project-rest-23/internal/models"
)

// TaskDTO represents a task at the API boundary. TaskStatus is a pointer so
// an update payload that omits it can be told apart from one that sets it.
// Related entities are referenced by business key only.
type TaskDTO struct {
	ID               uint64         `json:"id,omitempty"`
	ProjectCode      string         `json:"project_code"`
	AssignedEmployee string         `json:"assigned_employee"`
	TaskSubject      string         `json:"task_subject"`
	TaskDetail       string         `json:"task_detail"`
	TaskStatus       *models.Status `json:"task_status,omitempty"`
	AssignedDate     *time.Time     `json:"assigned_date,omitempty"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	status := task.TaskStatus
	assignedDate := task.AssignedDate
	return TaskDTO{
		ID:               task.ID,
		ProjectCode:      task.Project.ProjectCode,
		AssignedEmployee: task.AssignedEmployee.UserName,
		TaskSubject:      task.TaskSubject,
		TaskDetail:       task.TaskDetail,
		TaskStatus:       &status,
		AssignedDate:     &assignedDate,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}

// ToTaskEntity converts a TaskDTO to a Task model. Project and employee must
// be resolved by the caller from their business-key references; identity,
// status defaulting, and the assigned date are service concerns.
func ToTaskEntity(dto TaskDTO, project models.Project, employee models.User) models.Task {
	task := models.Task{
		ProjectID:          project.ID,
		AssignedEmployeeID: employee.ID,
		TaskSubject:        dto.TaskSubject,
		TaskDetail:         dto.TaskDetail,
		Project:            project,
		AssignedEmployee:   employee,
	}
	if dto.TaskStatus != nil {
		task.TaskStatus = *dto.TaskStatus
	}
	if dto.AssignedDate != nil {
		task.AssignedDate = *dto.AssignedDate
	}
	return task
}
