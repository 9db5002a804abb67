package database

import (
	"gorm.io/gorm"
)

// Deleted filters rows by the soft-delete flag. Every repository query goes
// through this scope with an explicit includeDeleted argument instead of
// relying on an implicit global predicate.
func Deleted(includeDeleted bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if includeDeleted {
			return db
		}
		return db.Where("is_deleted = ?", false)
	}
}
