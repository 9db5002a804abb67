package repository

import (
	"errors"

	"github.com/sa-023/ticketing-project-rest-23/internal/database"
	"github.com/sa-023/ticketing-project-rest-23/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// FindByCode finds a project by its business key with the manager preloaded
func (r *GormProjectRepository) FindByCode(code string, includeDeleted bool) (*models.Project, error) {
	var project models.Project
	if err := r.db.Scopes(database.Deleted(includeDeleted)).
		Preload("AssignedManager").
		Where("project_code = ?", code).
		First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// FindAll lists projects
func (r *GormProjectRepository) FindAll(includeDeleted bool) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Scopes(database.Deleted(includeDeleted)).
		Preload("AssignedManager").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindAllByManagerID lists projects assigned to a manager
func (r *GormProjectRepository) FindAllByManagerID(managerID uint64, includeDeleted bool) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Scopes(database.Deleted(includeDeleted)).
		Preload("AssignedManager").
		Where("manager_id = ?", managerID).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Save inserts or replaces a project by identity. The manager reference is
// written by ID only.
func (r *GormProjectRepository) Save(project *models.Project) error {
	return r.db.Omit(clause.Associations).Save(project).Error
}
