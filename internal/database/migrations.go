package database

import (
	"fmt"

	"github.com/sa-023/ticketing-project-rest-23/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Task indexes for per-project aggregates and employee queues
		{"tasks", "idx_tasks_project_id", "project_id"},
		{"tasks", "idx_tasks_assigned_employee_id", "assigned_employee_id"},
		{"tasks", "idx_tasks_task_status", "task_status"},
		{"tasks", "idx_tasks_is_deleted", "is_deleted"},

		// Project indexes for manager lookups and soft-delete filtering
		{"projects", "idx_projects_manager_id", "manager_id"},
		{"projects", "idx_projects_is_deleted", "is_deleted"},

		// User indexes for role listings
		{"users", "idx_users_role_id", "role_id"},
		{"users", "idx_users_is_deleted", "is_deleted"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM information_schema.statistics
			WHERE table_name = ? AND index_name = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}

// SeedRoles inserts the reference roles if they are not present yet.
func SeedRoles(db *gorm.DB) error {
	descriptions := []string{"Admin", "Manager", "Employee"}

	for _, description := range descriptions {
		var count int64
		if err := db.Model(&models.Role{}).
			Where("description = ?", description).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check role %s: %w", description, err)
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&models.Role{Description: description}).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", description, err)
		}
	}

	return nil
}
