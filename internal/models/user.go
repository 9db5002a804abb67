package models

import "time"

type User struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"last_name"`
	UserName  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"user_name"`
	PassWord  string    `gorm:"type:varchar(255);not null" json:"-"`
	Enabled   bool      `gorm:"not null;default:false" json:"enabled"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	Gender    Gender    `gorm:"type:varchar(10)" json:"gender"`
	RoleID    uint64    `gorm:"not null" json:"role_id"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}
