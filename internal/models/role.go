package models

import "strings"

// Role is immutable reference data seeded at startup and referenced by users.
type Role struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Description string `gorm:"type:varchar(50);uniqueIndex;not null" json:"description"`
}

// RoleKind is the closed set of role categories the deletion-eligibility
// rules branch on. Roles outside the known set map to RoleKindOther.
type RoleKind int

const (
	RoleKindOther RoleKind = iota
	RoleKindAdmin
	RoleKindManager
	RoleKindEmployee
)

// Kind classifies the role by its description, case-insensitively.
func (r Role) Kind() RoleKind {
	switch strings.ToLower(r.Description) {
	case "admin":
		return RoleKindAdmin
	case "manager":
		return RoleKindManager
	case "employee":
		return RoleKindEmployee
	default:
		return RoleKindOther
	}
}
