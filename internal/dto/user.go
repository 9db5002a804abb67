package dto

import (
	"github.com/sa-023/ticketing-project-rest-23/internal/models"
)

// UserDTO represents a user at the API boundary. PassWord and
// ConfirmPassWord are write-only: they are accepted on input and never
// populated when converting from a stored user.
type UserDTO struct {
	ID              uint64        `json:"id,omitempty"`
	FirstName       string        `json:"first_name"`
	LastName        string        `json:"last_name"`
	UserName        string        `json:"user_name"`
	PassWord        string        `json:"pass_word,omitempty"`
	ConfirmPassWord string        `json:"confirm_pass_word,omitempty"`
	Enabled         bool          `json:"enabled"`
	Phone           string        `json:"phone"`
	Role            string        `json:"role"`
	Gender          models.Gender `json:"gender"`
}

// ToUserDTO converts a User model to UserDTO. The credential is dropped.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		UserName:  user.UserName,
		Enabled:   user.Enabled,
		Phone:     user.Phone,
		Role:      user.Role.Description,
		Gender:    user.Gender,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}

// ToUserEntity converts a UserDTO to a User model. The role must be resolved
// by the caller; identity is left unset and comes from the prior record on
// updates. The credential is carried as-is, hashing is a service concern.
func ToUserEntity(dto UserDTO, role models.Role) models.User {
	return models.User{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		UserName:  dto.UserName,
		PassWord:  dto.PassWord,
		Enabled:   dto.Enabled,
		Phone:     dto.Phone,
		Gender:    dto.Gender,
		RoleID:    role.ID,
		Role:      role,
	}
}
