package services

import (
	"testing"
	"time"

	"github.com/sa-023/ticketing-project-rest-23/internal/database"
	"github.com/sa-023/ticketing-project-rest-23/internal/dto"
	"github.com/sa-023/ticketing-project-rest-23/internal/models"
	"github.com/sa-023/ticketing-project-rest-23/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	db             *gorm.DB
	projectRepo    repository.ProjectRepository
	taskRepo       repository.TaskRepository
	projectService *ProjectService
	taskService    *TaskService
}

// SetupTest runs before each test
func (suite *ProjectServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Project{},
		&models.Task{},
	)
	suite.Require().NoError(err)

	suite.Require().NoError(database.SeedRoles(suite.db))
	database.SetDB(suite.db)

	suite.projectRepo = repository.NewProjectRepository(suite.db)
	suite.taskRepo = repository.NewTaskRepository(suite.db)
	userRepo := repository.NewUserRepository(suite.db)
	suite.taskService = NewTaskService(suite.taskRepo, suite.projectRepo, userRepo)
	suite.projectService = NewProjectService(suite.projectRepo, userRepo, suite.taskService)
}

// TearDownTest runs after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ProjectServiceTestSuite) createTestUser(username, roleDescription string) *models.User {
	var role models.Role
	suite.Require().NoError(suite.db.Where("description = ?", roleDescription).First(&role).Error)

	user := &models.User{
		FirstName: "Test",
		LastName:  "User",
		UserName:  username,
		PassWord:  "hashed",
		Enabled:   true,
		RoleID:    role.ID,
	}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

func (suite *ProjectServiceTestSuite) createTestProject(code string, managerID uint64) *models.Project {
	project := &models.Project{
		ProjectName:   "Project " + code,
		ProjectCode:   code,
		ManagerID:     managerID,
		ProjectStatus: models.StatusOpen,
	}
	suite.Require().NoError(suite.db.Create(project).Error)
	return project
}

func (suite *ProjectServiceTestSuite) createTestTask(projectID, employeeID uint64, status models.Status) *models.Task {
	task := &models.Task{
		ProjectID:          projectID,
		AssignedEmployeeID: employeeID,
		TaskSubject:        "Test Task",
		TaskStatus:         status,
		AssignedDate:       time.Now(),
	}
	suite.Require().NoError(suite.db.Create(task).Error)
	return task
}

func (suite *ProjectServiceTestSuite) TestCreate_ForcesOpenStatus() {
	suite.createTestUser("mike@manager.com", "Manager")

	created, err := suite.projectService.Create(dto.ProjectDTO{
		ProjectName:     "Billing rewrite",
		ProjectCode:     "PR001",
		AssignedManager: "mike@manager.com",
		ProjectStatus:   models.StatusComplete,
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.StatusOpen, created.ProjectStatus)
	assert.Equal(suite.T(), "mike@manager.com", created.AssignedManager)
	assert.Equal(suite.T(), int64(0), created.CompletedTaskCounts)
	assert.Equal(suite.T(), int64(0), created.UnfinishedTaskCounts)
}

func (suite *ProjectServiceTestSuite) TestFindByCode_EnrichesLiveCounters() {
	manager := suite.createTestUser("mike@manager.com", "Manager")
	employee := suite.createTestUser("john@employee.com", "Employee")
	project := suite.createTestProject("PR001", manager.ID)

	suite.createTestTask(project.ID, employee.ID, models.StatusComplete)
	suite.createTestTask(project.ID, employee.ID, models.StatusOpen)
	suite.createTestTask(project.ID, employee.ID, models.StatusOpen)

	found, err := suite.projectService.FindByCode("PR001")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1), found.CompletedTaskCounts)
	assert.Equal(suite.T(), int64(2), found.UnfinishedTaskCounts)
}

func (suite *ProjectServiceTestSuite) TestUpdate_PreservesIdentityAndOmittedStatus() {
	manager := suite.createTestUser("mike@manager.com", "Manager")
	project := suite.createTestProject("PR001", manager.ID)
	suite.Require().NoError(suite.db.Model(project).Update("project_status", models.StatusComplete).Error)

	updated, err := suite.projectService.Update(dto.ProjectDTO{
		ProjectName:     "Renamed",
		ProjectCode:     "PR001",
		AssignedManager: "mike@manager.com",
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), project.ID, updated.ID)
	assert.Equal(suite.T(), "Renamed", updated.ProjectName)
	assert.Equal(suite.T(), models.StatusComplete, updated.ProjectStatus)
}

func (suite *ProjectServiceTestSuite) TestComplete_CascadesToEveryTask() {
	manager := suite.createTestUser("mike@manager.com", "Manager")
	employee := suite.createTestUser("john@employee.com", "Employee")
	project := suite.createTestProject("PR001", manager.ID)

	suite.createTestTask(project.ID, employee.ID, models.StatusOpen)
	suite.createTestTask(project.ID, employee.ID, models.StatusOpen)
	suite.createTestTask(project.ID, employee.ID, models.StatusOpen)

	completed, err := suite.projectService.Complete("PR001")
	suite.Require().NoError(err)

	assert.Equal(suite.T(), models.StatusComplete, completed.ProjectStatus)
	assert.Equal(suite.T(), int64(3), completed.CompletedTaskCounts)
	assert.Equal(suite.T(), int64(0), completed.UnfinishedTaskCounts)
}

func (suite *ProjectServiceTestSuite) TestDelete_CascadesSoftDeleteToTasks() {
	manager := suite.createTestUser("mike@manager.com", "Manager")
	employee := suite.createTestUser("john@employee.com", "Employee")
	project := suite.createTestProject("PR001", manager.ID)
	first := suite.createTestTask(project.ID, employee.ID, models.StatusOpen)
	second := suite.createTestTask(project.ID, employee.ID, models.StatusComplete)

	suite.Require().NoError(suite.projectService.Delete("PR001"))

	// Project is gone from the default view
	_, err := suite.projectService.FindByCode("PR001")
	assert.ErrorIs(suite.T(), err, ErrProjectNotFound)

	// Child tasks are soft-deleted: absent by default, present with the
	// deletion filter disabled
	for _, id := range []uint64{first.ID, second.ID} {
		missing, err := suite.taskRepo.FindByID(id, false)
		suite.Require().NoError(err)
		assert.Nil(suite.T(), missing)

		retained, err := suite.taskRepo.FindByID(id, true)
		suite.Require().NoError(err)
		suite.Require().NotNil(retained)
		assert.True(suite.T(), retained.IsDeleted)
	}
}

func (suite *ProjectServiceTestSuite) TestListAllByManager_ExcludesDeleted() {
	manager := suite.createTestUser("mike@manager.com", "Manager")
	other := suite.createTestUser("anna@manager.com", "Manager")
	suite.createTestProject("PR001", manager.ID)
	suite.createTestProject("PR002", manager.ID)
	suite.createTestProject("PR003", other.ID)

	suite.Require().NoError(suite.projectService.Delete("PR002"))

	projects, err := suite.projectService.ListAllByManager(manager)
	suite.Require().NoError(err)
	assert.Len(suite.T(), projects, 1)
	assert.Equal(suite.T(), "PR001", projects[0].ProjectCode)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
