package services

import (
	"fmt"
	"time"

	"github.com/sa-023/ticketing-project-rest-23/internal/dto"
	"github.com/sa-023/ticketing-project-rest-23/internal/models"
	"github.com/sa-023/ticketing-project-rest-23/internal/repository"
)

// TaskService handles task lifecycle business logic, including the bulk
// cascades invoked by the project lifecycle.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// FindByID returns a task by its surrogate id
func (s *TaskService) FindByID(id uint64) (*dto.TaskDTO, error) {
	task, err := s.taskRepo.FindByID(id, false)
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	taskDTO := dto.ToTaskDTO(*task)
	return &taskDTO, nil
}

// ListAll returns all non-deleted tasks
func (s *TaskService) ListAll() ([]dto.TaskDTO, error) {
	tasks, err := s.taskRepo.FindAll(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return dto.ToTaskDTOs(tasks), nil
}

// Create creates a task. Status is forced to OPEN and the assigned date to
// the creation time regardless of caller-supplied values.
func (s *TaskService) Create(input dto.TaskDTO) (*dto.TaskDTO, error) {
	project, employee, err := s.resolveReferences(input)
	if err != nil {
		return nil, err
	}

	task := dto.ToTaskEntity(input, *project, *employee)
	task.TaskStatus = models.StatusOpen
	task.AssignedDate = time.Now()

	if err := s.taskRepo.Save(&task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.FindByID(task.ID)
}

// Update replaces a task's mutable fields. The id and the original assigned
// date always come from the prior record; the prior status is kept unless the
// payload explicitly supplies one.
func (s *TaskService) Update(input dto.TaskDTO) (*dto.TaskDTO, error) {
	existing, err := s.taskRepo.FindByID(input.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if existing == nil {
		return nil, ErrTaskNotFound
	}

	project, employee, err := s.resolveReferences(input)
	if err != nil {
		return nil, err
	}

	converted := dto.ToTaskEntity(input, *project, *employee)
	converted.ID = existing.ID
	converted.AssignedDate = existing.AssignedDate
	converted.CreatedAt = existing.CreatedAt
	if input.TaskStatus == nil {
		converted.TaskStatus = existing.TaskStatus
	}

	if err := s.taskRepo.Save(&converted); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.FindByID(converted.ID)
}

// UpdateStatus overwrites only the status of an existing task.
func (s *TaskService) UpdateStatus(input dto.TaskDTO) (*dto.TaskDTO, error) {
	if input.TaskStatus == nil {
		return nil, ErrTaskStatusRequired
	}

	task, err := s.taskRepo.FindByID(input.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	task.TaskStatus = *input.TaskStatus
	if err := s.taskRepo.Save(task); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	taskDTO := dto.ToTaskDTO(*task)
	return &taskDTO, nil
}

// Delete soft-deletes a task; the record is retained for history.
func (s *TaskService) Delete(id uint64) error {
	task, err := s.taskRepo.FindByID(id, false)
	if err != nil {
		return fmt.Errorf("failed to find task: %w", err)
	}
	if task == nil {
		return ErrTaskNotFound
	}

	task.IsDeleted = true
	if err := s.taskRepo.Save(task); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// TotalCompletedTask counts non-deleted COMPLETE tasks under a project code
func (s *TaskService) TotalCompletedTask(projectCode string) (int64, error) {
	return s.taskRepo.CountCompletedByProjectCode(projectCode)
}

// TotalNonCompletedTask counts non-deleted unfinished tasks under a project code
func (s *TaskService) TotalNonCompletedTask(projectCode string) (int64, error) {
	return s.taskRepo.CountUnfinishedByProjectCode(projectCode)
}

// DeleteByProject soft-deletes every non-deleted task under a project. The
// fan-out is not atomic; a mid-cascade failure reports how far it got.
func (s *TaskService) DeleteByProject(projectCode string) error {
	tasks, err := s.listAllByProject(projectCode)
	if err != nil {
		return err
	}

	for i, task := range tasks {
		if err := s.Delete(task.ID); err != nil {
			return fmt.Errorf("project %s task cascade incomplete, deleted %d of %d: %w",
				projectCode, i, len(tasks), err)
		}
	}
	return nil
}

// CompleteByProject sets every non-deleted task under a project to COMPLETE
// through the single-task update path.
func (s *TaskService) CompleteByProject(projectCode string) error {
	tasks, err := s.listAllByProject(projectCode)
	if err != nil {
		return err
	}

	status := models.StatusComplete
	for i, task := range tasks {
		taskDTO := dto.ToTaskDTO(task)
		taskDTO.TaskStatus = &status
		if _, err := s.Update(taskDTO); err != nil {
			return fmt.Errorf("project %s task cascade incomplete, completed %d of %d: %w",
				projectCode, i, len(tasks), err)
		}
	}
	return nil
}

// ListAllByStatus returns an employee's non-deleted tasks with the given status
func (s *TaskService) ListAllByStatus(status models.Status, employeeUsername string) ([]dto.TaskDTO, error) {
	employee, err := s.resolveEmployee(employeeUsername)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindAllByStatusAndEmployeeID(status, employee.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by status: %w", err)
	}
	return dto.ToTaskDTOs(tasks), nil
}

// ListAllByStatusIsNot returns an employee's non-deleted tasks excluding the given status
func (s *TaskService) ListAllByStatusIsNot(status models.Status, employeeUsername string) ([]dto.TaskDTO, error) {
	employee, err := s.resolveEmployee(employeeUsername)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindAllByStatusNotAndEmployeeID(status, employee.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by status exclusion: %w", err)
	}
	return dto.ToTaskDTOs(tasks), nil
}

// ListAllByAssignedEmployee returns the non-deleted tasks assigned to a user.
// Serves the deletion-eligibility check for employees.
func (s *TaskService) ListAllByAssignedEmployee(employee *models.User) ([]dto.TaskDTO, error) {
	tasks, err := s.taskRepo.FindAllByEmployeeID(employee.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by employee: %w", err)
	}
	return dto.ToTaskDTOs(tasks), nil
}

func (s *TaskService) listAllByProject(projectCode string) ([]models.Task, error) {
	project, err := s.projectRepo.FindByCode(projectCode, true)
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	tasks, err := s.taskRepo.FindAllByProjectID(project.ID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by project: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) resolveReferences(input dto.TaskDTO) (*models.Project, *models.User, error) {
	project, err := s.projectRepo.FindByCode(input.ProjectCode, false)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find project: %w", err)
	}
	if project == nil {
		return nil, nil, ErrProjectNotFound
	}

	employee, err := s.resolveEmployee(input.AssignedEmployee)
	if err != nil {
		return nil, nil, err
	}

	return project, employee, nil
}

func (s *TaskService) resolveEmployee(username string) (*models.User, error) {
	employee, err := s.userRepo.FindByUserName(username, false)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	if employee == nil {
		return nil, ErrUserNotFound
	}
	return employee, nil
}
