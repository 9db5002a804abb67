package repository

import (
	"errors"

	"github.com/sa-023/ticketing-project-rest-23/internal/database"
	"github.com/sa-023/ticketing-project-rest-23/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64, includeDeleted bool) (*models.User, error) {
	var user models.User
	if err := r.db.Scopes(database.Deleted(includeDeleted)).
		Preload("Role").
		First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByUserName finds a user by username with the role preloaded
func (r *GormUserRepository) FindByUserName(username string, includeDeleted bool) (*models.User, error) {
	var user models.User
	if err := r.db.Scopes(database.Deleted(includeDeleted)).
		Preload("Role").
		Where("user_name = ?", username).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindAllSortedByFirstName lists users ordered by first name ascending
func (r *GormUserRepository) FindAllSortedByFirstName(includeDeleted bool) ([]models.User, error) {
	var users []models.User
	if err := r.db.Scopes(database.Deleted(includeDeleted)).
		Preload("Role").
		Order("first_name ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindAllByRoleDescription lists users whose role description matches, case-insensitively
func (r *GormUserRepository) FindAllByRoleDescription(role string, includeDeleted bool) ([]models.User, error) {
	var users []models.User
	query := r.db.
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("LOWER(roles.description) = LOWER(?)", role).
		Preload("Role")
	if !includeDeleted {
		query = query.Where("users.is_deleted = ?", false)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Save inserts or replaces a user by identity. Associations are reference
// data and are never written through here.
func (r *GormUserRepository) Save(user *models.User) error {
	return r.db.Omit(clause.Associations).Save(user).Error
}

// DeleteByUserName hard deletes a user row (administrative path)
func (r *GormUserRepository) DeleteByUserName(username string) error {
	return r.db.Where("user_name = ?", username).Delete(&models.User{}).Error
}
