package repository

import (
	"errors"

	"github.com/sa-023/ticketing-project-rest-23/internal/database"
	"github.com/sa-023/ticketing-project-rest-23/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scalar aggregates over the task population of a project. Written as native
// queries so the soft-delete filter is explicit rather than inherited.
const (
	completedTasksQuery = `SELECT COUNT(*) FROM tasks JOIN projects ON projects.id = tasks.project_id WHERE projects.project_code = ? AND tasks.is_deleted = false AND tasks.task_status = ?`

	unfinishedTasksQuery = `SELECT COUNT(*) FROM tasks JOIN projects ON projects.id = tasks.project_id WHERE projects.project_code = ? AND tasks.is_deleted = false AND tasks.task_status <> ?`
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// FindByID finds a task by ID with project and employee preloaded
func (r *GormTaskRepository) FindByID(id uint64, includeDeleted bool) (*models.Task, error) {
	var task models.Task
	if err := r.db.Scopes(database.Deleted(includeDeleted)).
		Preload("Project").
		Preload("AssignedEmployee").
		First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// FindAll lists tasks
func (r *GormTaskRepository) FindAll(includeDeleted bool) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Scopes(database.Deleted(includeDeleted)).
		Preload("Project").
		Preload("AssignedEmployee").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindAllByProjectID lists tasks belonging to a project
func (r *GormTaskRepository) FindAllByProjectID(projectID uint64, includeDeleted bool) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Scopes(database.Deleted(includeDeleted)).
		Preload("Project").
		Preload("AssignedEmployee").
		Where("project_id = ?", projectID).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindAllByEmployeeID lists tasks assigned to an employee
func (r *GormTaskRepository) FindAllByEmployeeID(employeeID uint64, includeDeleted bool) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Scopes(database.Deleted(includeDeleted)).
		Preload("Project").
		Preload("AssignedEmployee").
		Where("assigned_employee_id = ?", employeeID).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindAllByStatusAndEmployeeID lists an employee's tasks with the given status
func (r *GormTaskRepository) FindAllByStatusAndEmployeeID(status models.Status, employeeID uint64, includeDeleted bool) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Scopes(database.Deleted(includeDeleted)).
		Preload("Project").
		Preload("AssignedEmployee").
		Where("task_status = ? AND assigned_employee_id = ?", status, employeeID).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindAllByStatusNotAndEmployeeID lists an employee's tasks excluding the given status
func (r *GormTaskRepository) FindAllByStatusNotAndEmployeeID(status models.Status, employeeID uint64, includeDeleted bool) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Scopes(database.Deleted(includeDeleted)).
		Preload("Project").
		Preload("AssignedEmployee").
		Where("task_status <> ? AND assigned_employee_id = ?", status, employeeID).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// CountCompletedByProjectCode counts non-deleted COMPLETE tasks under a project code
func (r *GormTaskRepository) CountCompletedByProjectCode(code string) (int64, error) {
	var count int64
	if err := r.db.Raw(completedTasksQuery, code, models.StatusComplete).
		Scan(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountUnfinishedByProjectCode counts non-deleted non-COMPLETE tasks under a project code
func (r *GormTaskRepository) CountUnfinishedByProjectCode(code string) (int64, error) {
	var count int64
	if err := r.db.Raw(unfinishedTasksQuery, code, models.StatusComplete).
		Scan(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save inserts or replaces a task by identity. Project and employee
// references are written by ID only.
func (r *GormTaskRepository) Save(task *models.Task) error {
	return r.db.Omit(clause.Associations).Save(task).Error
}
