package repository

import (
	"github.com/sa-023/ticketing-project-rest-23/internal/models"
)

// Lookups take an explicit includeDeleted flag; passing false excludes
// soft-deleted rows. A lookup that matches nothing returns (nil, nil) —
// absence is not an error at this layer.

// RoleRepository defines the interface for role reference data access
type RoleRepository interface {
	// FindByID finds a role by ID
	FindByID(id uint64) (*models.Role, error)

	// FindByDescription finds a role by its description, case-insensitively
	FindByDescription(description string) (*models.Role, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(id uint64, includeDeleted bool) (*models.User, error)

	// FindByUserName finds a user by username with the role preloaded
	FindByUserName(username string, includeDeleted bool) (*models.User, error)

	// FindAllSortedByFirstName lists users ordered by first name ascending
	FindAllSortedByFirstName(includeDeleted bool) ([]models.User, error)

	// FindAllByRoleDescription lists users whose role description matches, case-insensitively
	FindAllByRoleDescription(role string, includeDeleted bool) ([]models.User, error)

	// Save inserts or replaces a user by identity
	Save(user *models.User) error

	// DeleteByUserName hard deletes a user row (administrative path)
	DeleteByUserName(username string) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// FindByCode finds a project by its business key with the manager preloaded
	FindByCode(code string, includeDeleted bool) (*models.Project, error)

	// FindAll lists projects
	FindAll(includeDeleted bool) ([]models.Project, error)

	// FindAllByManagerID lists projects assigned to a manager
	FindAllByManagerID(managerID uint64, includeDeleted bool) ([]models.Project, error)

	// Save inserts or replaces a project by identity
	Save(project *models.Project) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// FindByID finds a task by ID with project and employee preloaded
	FindByID(id uint64, includeDeleted bool) (*models.Task, error)

	// FindAll lists tasks
	FindAll(includeDeleted bool) ([]models.Task, error)

	// FindAllByProjectID lists tasks belonging to a project
	FindAllByProjectID(projectID uint64, includeDeleted bool) ([]models.Task, error)

	// FindAllByEmployeeID lists tasks assigned to an employee
	FindAllByEmployeeID(employeeID uint64, includeDeleted bool) ([]models.Task, error)

	// FindAllByStatusAndEmployeeID lists an employee's tasks with the given status
	FindAllByStatusAndEmployeeID(status models.Status, employeeID uint64, includeDeleted bool) ([]models.Task, error)

	// FindAllByStatusNotAndEmployeeID lists an employee's tasks excluding the given status
	FindAllByStatusNotAndEmployeeID(status models.Status, employeeID uint64, includeDeleted bool) ([]models.Task, error)

	// CountCompletedByProjectCode counts non-deleted COMPLETE tasks under a project code
	CountCompletedByProjectCode(code string) (int64, error)

	// CountUnfinishedByProjectCode counts non-deleted non-COMPLETE tasks under a project code
	CountUnfinishedByProjectCode(code string) (int64, error)

	// Save inserts or replaces a task by identity
	Save(task *models.Task) error
}
