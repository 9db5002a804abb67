package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/sa-023/ticketing-project-rest-23/internal/config"
	"github.com/sa-023/ticketing-project-rest-23/internal/constants"
	"github.com/sa-023/ticketing-project-rest-23/internal/database"
	"github.com/sa-023/ticketing-project-rest-23/internal/handlers"
	"github.com/sa-023/ticketing-project-rest-23/internal/middleware"
	"github.com/sa-023/ticketing-project-rest-23/internal/repository"
	"github.com/sa-023/ticketing-project-rest-23/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations and seed reference data
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}
	if err := database.SeedRoles(database.GetDB()); err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,
		"tcp",
		redisAddr,
		"",
		[]byte(cfg.SessionSecret),
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	roleRepo := repository.NewRoleRepository(db)
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize the directory-sync collaborator
	var identity services.IdentityProvider = services.NoopIdentityProvider{}
	if cfg.KeycloakURL != "" {
		identity = services.NewKeycloakService(cfg)
	} else {
		log.Println("Keycloak is not configured, identity provisioning is disabled")
	}

	// Initialize services
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo)
	projectService := services.NewProjectService(projectRepo, userRepo, taskService)
	userService := services.NewUserService(userRepo, roleRepo, projectService, taskService, identity)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Ticketing Project API is running",
		})
	})

	// API routes
	api := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		// User routes (Admin only)
		users := api.Group("/user")
		users.Use(middleware.RequireAuth(), middleware.RequireRoles(constants.RoleAdmin))
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:username", userHandler.GetUserByUserName)
			users.GET("/role/:role", userHandler.GetUsersByRole)
			users.POST("", userHandler.CreateUser)
			users.PUT("", userHandler.UpdateUser)
			users.DELETE("/:username", userHandler.DeleteUser)
			users.DELETE("/purge/:username", userHandler.PurgeUser)
		}

		// Project routes (Manager or Admin), with request logging
		projects := api.Group("/project")
		projects.Use(middleware.RequireAuth(), middleware.RequestLogger(),
			middleware.RequireRoles(constants.RoleManager, constants.RoleAdmin))
		{
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/:code", projectHandler.GetProjectByCode)
			projects.POST("", projectHandler.CreateProject)
			projects.PUT("", projectHandler.UpdateProject)
			projects.PUT("/complete/:code", projectHandler.CompleteProject)
			projects.DELETE("/:code", projectHandler.DeleteProject)
		}

		// Task routes, with request logging
		tasks := api.Group("/task")
		tasks.Use(middleware.RequireAuth(), middleware.RequestLogger())
		{
			manager := tasks.Group("")
			manager.Use(middleware.RequireRoles(constants.RoleManager, constants.RoleAdmin))
			{
				manager.GET("", taskHandler.GetTasks)
				manager.GET("/:id", taskHandler.GetTaskByID)
				manager.POST("", taskHandler.CreateTask)
				manager.PUT("", taskHandler.UpdateTask)
				manager.DELETE("/:id", taskHandler.DeleteTask)
			}

			employee := tasks.Group("/employee")
			employee.Use(middleware.RequireRoles(constants.RoleEmployee))
			{
				employee.GET("/pending-tasks", taskHandler.GetPendingTasks)
				employee.GET("/archive", taskHandler.GetArchivedTasks)
				employee.PUT("/update", taskHandler.UpdateTaskStatus)
			}
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
