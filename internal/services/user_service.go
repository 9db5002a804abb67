package services

import (
	"context"
	"fmt"

	"github.com/sa-023/ticketing-project-rest-23/internal/constants"
	"github.com/sa-023/ticketing-project-rest-23/internal/dto"
	"github.com/sa-023/ticketing-project-rest-23/internal/models"
	"github.com/sa-023/ticketing-project-rest-23/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles user lifecycle business logic, including the
// eligibility-gated soft delete.
type UserService struct {
	userRepo       repository.UserRepository
	roleRepo       repository.RoleRepository
	projectService *ProjectService
	taskService    *TaskService
	identity       IdentityProvider
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, projectService *ProjectService, taskService *TaskService, identity IdentityProvider) *UserService {
	return &UserService{
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		projectService: projectService,
		taskService:    taskService,
		identity:       identity,
	}
}

// ListAll returns all non-deleted users sorted by first name ascending
func (s *UserService) ListAll() ([]dto.UserDTO, error) {
	users, err := s.userRepo.FindAllSortedByFirstName(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return dto.ToUserDTOs(users), nil
}

// FindByUserName returns a single non-deleted user by username
func (s *UserService) FindByUserName(username string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByUserName(username, false)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	userDTO := dto.ToUserDTO(*user)
	return &userDTO, nil
}

// Create registers a user. Enabled is always forced to true and the
// credential is one-way hashed before persisting. After the local write the
// directory-sync collaborator provisions the identity remotely; if that call
// fails the local record is left in place and the failure is surfaced.
func (s *UserService) Create(ctx context.Context, input dto.UserDTO) (*dto.UserDTO, error) {
	if err := validatePassword(input.PassWord, input.ConfirmPassWord); err != nil {
		return nil, err
	}

	role, err := s.resolveRole(input.Role)
	if err != nil {
		return nil, err
	}

	input.Enabled = true
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.PassWord), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := dto.ToUserEntity(input, *role)
	user.PassWord = string(hashed)

	if err := s.userRepo.Save(&user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// No compensation on provisioning failure: the local record stays.
	if _, err := s.identity.Provision(ctx, input); err != nil {
		return nil, fmt.Errorf("user %s persisted but identity provisioning failed: %w", user.UserName, err)
	}

	return s.FindByUserName(user.UserName)
}

// Update replaces a user's mutable fields. The username is the lookup key
// and is not updatable; identity always comes from the prior record. An
// empty payload credential keeps the stored hash.
func (s *UserService) Update(input dto.UserDTO) (*dto.UserDTO, error) {
	existing, err := s.userRepo.FindByUserName(input.UserName, false)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	role, err := s.resolveRole(input.Role)
	if err != nil {
		return nil, err
	}

	converted := dto.ToUserEntity(input, *role)
	converted.ID = existing.ID
	converted.CreatedAt = existing.CreatedAt
	if input.PassWord == "" {
		converted.PassWord = existing.PassWord
	} else {
		if err := validatePassword(input.PassWord, input.ConfirmPassWord); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.PassWord), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		converted.PassWord = string(hashed)
	}

	if err := s.userRepo.Save(&converted); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.FindByUserName(input.UserName)
}

// DeleteByUserName hard deletes a user, bypassing the eligibility check.
// Administrative path only.
func (s *UserService) DeleteByUserName(username string) error {
	if err := s.userRepo.DeleteByUserName(username); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Delete soft-deletes a user if the eligibility check passes. The username is
// rewritten to <original>-<id> so the original value is freed for reuse.
func (s *UserService) Delete(username string) error {
	user, err := s.userRepo.FindByUserName(username, false)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	eligible, err := s.checkIfUserCanBeDeleted(user)
	if err != nil {
		return err
	}
	if !eligible {
		return ErrUserCanNotBeDeleted
	}

	user.IsDeleted = true
	user.UserName = fmt.Sprintf("%s-%d", user.UserName, user.ID)
	if err := s.userRepo.Save(user); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Authenticate verifies a credential against the stored hash and returns the
// principal's transfer object on success.
func (s *UserService) Authenticate(username, password string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByUserName(username, false)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassWord), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	userDTO := dto.ToUserDTO(*user)
	return &userDTO, nil
}

// ListAllByRole returns non-deleted users whose role description matches,
// case-insensitively.
func (s *UserService) ListAllByRole(role string) ([]dto.UserDTO, error) {
	users, err := s.userRepo.FindAllByRoleDescription(role, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}
	return dto.ToUserDTOs(users), nil
}

// checkIfUserCanBeDeleted evaluates the role-specific eligibility rule: a
// manager must own no live projects, an employee must hold no live tasks.
func (s *UserService) checkIfUserCanBeDeleted(user *models.User) (bool, error) {
	switch user.Role.Kind() {
	case models.RoleKindManager:
		projects, err := s.projectService.ListAllByManager(user)
		if err != nil {
			return false, err
		}
		return len(projects) == 0, nil
	case models.RoleKindEmployee:
		tasks, err := s.taskService.ListAllByAssignedEmployee(user)
		if err != nil {
			return false, err
		}
		return len(tasks) == 0, nil
	case models.RoleKindAdmin, models.RoleKindOther:
		return true, nil
	default:
		return true, nil
	}
}

// validatePassword enforces the minimum length and, when a confirmation is
// supplied, that the two values agree.
func validatePassword(password, confirm string) error {
	if len(password) < constants.MinPasswordLength {
		return ErrPasswordTooShort
	}
	if confirm != "" && confirm != password {
		return ErrPasswordMismatch
	}
	return nil
}

func (s *UserService) resolveRole(description string) (*models.Role, error) {
	role, err := s.roleRepo.FindByDescription(description)
	if err != nil {
		return nil, fmt.Errorf("failed to find role: %w", err)
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}
	return role, nil
}
