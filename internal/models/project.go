package models

import "time"

// Project carries no task counters; completed/unfinished counts are derived
// from the task population on every read.
type Project struct {
	ID            uint64     `gorm:"primarykey" json:"id"`
	ProjectName   string     `gorm:"type:varchar(255);not null" json:"project_name"`
	ProjectCode   string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"project_code"`
	ManagerID     uint64     `gorm:"not null" json:"manager_id"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	ProjectDetail string     `gorm:"type:text" json:"project_detail"`
	ProjectStatus Status     `gorm:"type:varchar(20);not null;default:'OPEN'" json:"project_status"`
	IsDeleted     bool       `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relations
	AssignedManager User `gorm:"foreignKey:ManagerID" json:"assigned_manager,omitempty"`
}
