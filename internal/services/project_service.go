package services

import (
	"fmt"

	"github.com/sa-023/ticketing-project-rest-23/internal/dto"
	"github.com/sa-023/ticketing-project-rest-23/internal/models"
	"github.com/sa-023/ticketing-project-rest-23/internal/repository"
)

// ProjectService handles project lifecycle business logic. Completed and
// unfinished task counters are computed from the task population on every
// read, never stored.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	taskService *TaskService
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository, taskService *TaskService) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		taskService: taskService,
	}
}

// FindByCode returns a project by its business key with live task counters
func (s *ProjectService) FindByCode(code string) (*dto.ProjectDTO, error) {
	project, err := s.projectRepo.FindByCode(code, false)
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	projectDTO, err := s.enrich(*project)
	if err != nil {
		return nil, err
	}
	return &projectDTO, nil
}

// ListAll returns all non-deleted projects with live task counters
func (s *ProjectService) ListAll() ([]dto.ProjectDTO, error) {
	projects, err := s.projectRepo.FindAll(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	dtos := make([]dto.ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i], err = s.enrich(project)
		if err != nil {
			return nil, err
		}
	}
	return dtos, nil
}

// Create creates a project. Status is forced to OPEN regardless of input.
func (s *ProjectService) Create(input dto.ProjectDTO) (*dto.ProjectDTO, error) {
	manager, err := s.resolveManager(input.AssignedManager)
	if err != nil {
		return nil, err
	}

	project := dto.ToProjectEntity(input, *manager)
	project.ProjectStatus = models.StatusOpen

	if err := s.projectRepo.Save(&project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.FindByCode(project.ProjectCode)
}

// Update replaces a project's mutable fields. The project code is the lookup
// key; identity always comes from the prior record, and the prior status is
// kept when the payload omits one.
func (s *ProjectService) Update(input dto.ProjectDTO) (*dto.ProjectDTO, error) {
	existing, err := s.projectRepo.FindByCode(input.ProjectCode, false)
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if existing == nil {
		return nil, ErrProjectNotFound
	}

	manager, err := s.resolveManager(input.AssignedManager)
	if err != nil {
		return nil, err
	}

	converted := dto.ToProjectEntity(input, *manager)
	converted.ID = existing.ID
	converted.CreatedAt = existing.CreatedAt
	if input.ProjectStatus == "" {
		converted.ProjectStatus = existing.ProjectStatus
	}

	if err := s.projectRepo.Save(&converted); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.FindByCode(converted.ProjectCode)
}

// Complete sets a project to COMPLETE and cascades a bulk-complete over all
// of its tasks.
func (s *ProjectService) Complete(code string) (*dto.ProjectDTO, error) {
	project, err := s.projectRepo.FindByCode(code, false)
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	project.ProjectStatus = models.StatusComplete
	if err := s.projectRepo.Save(project); err != nil {
		return nil, fmt.Errorf("failed to complete project: %w", err)
	}

	if err := s.taskService.CompleteByProject(code); err != nil {
		return nil, err
	}

	return s.FindByCode(code)
}

// Delete soft-deletes a project and cascades a bulk soft-delete over all of
// its tasks, preserving history.
func (s *ProjectService) Delete(code string) error {
	project, err := s.projectRepo.FindByCode(code, false)
	if err != nil {
		return fmt.Errorf("failed to find project: %w", err)
	}
	if project == nil {
		return ErrProjectNotFound
	}

	project.IsDeleted = true
	if err := s.projectRepo.Save(project); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return s.taskService.DeleteByProject(code)
}

// ListAllByManager returns the non-deleted projects assigned to a manager.
// Serves the deletion-eligibility check for managers.
func (s *ProjectService) ListAllByManager(manager *models.User) ([]dto.ProjectDTO, error) {
	projects, err := s.projectRepo.FindAllByManagerID(manager.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects by manager: %w", err)
	}

	dtos := make([]dto.ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i], err = s.enrich(project)
		if err != nil {
			return nil, err
		}
	}
	return dtos, nil
}

func (s *ProjectService) enrich(project models.Project) (dto.ProjectDTO, error) {
	completed, err := s.taskService.TotalCompletedTask(project.ProjectCode)
	if err != nil {
		return dto.ProjectDTO{}, fmt.Errorf("failed to count completed tasks: %w", err)
	}
	unfinished, err := s.taskService.TotalNonCompletedTask(project.ProjectCode)
	if err != nil {
		return dto.ProjectDTO{}, fmt.Errorf("failed to count unfinished tasks: %w", err)
	}
	return dto.ToProjectDTO(project, completed, unfinished), nil
}

func (s *ProjectService) resolveManager(username string) (*models.User, error) {
	manager, err := s.userRepo.FindByUserName(username, false)
	if err != nil {
		return nil, fmt.Errorf("failed to find manager: %w", err)
	}
	if manager == nil {
		return nil, ErrUserNotFound
	}
	return manager, nil
}
