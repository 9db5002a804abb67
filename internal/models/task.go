package models

import "time"

type Task struct {
	ID                 uint64    `gorm:"primarykey" json:"id"`
	ProjectID          uint64    `gorm:"not null" json:"project_id"`
	AssignedEmployeeID uint64    `gorm:"not null" json:"assigned_employee_id"`
	TaskSubject        string    `gorm:"type:varchar(255);not null" json:"task_subject"`
	TaskDetail         string    `gorm:"type:text" json:"task_detail"`
	TaskStatus         Status    `gorm:"type:varchar(20);not null;default:'OPEN'" json:"task_status"`
	AssignedDate       time.Time `json:"assigned_date"`
	IsDeleted          bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Relations
	Project          Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	AssignedEmployee User    `gorm:"foreignKey:AssignedEmployeeID" json:"assigned_employee,omitempty"`
}
