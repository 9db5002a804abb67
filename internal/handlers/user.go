package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sa-023/ticketing-project-rest-23/internal/dto"
	apierrors "github.com/sa-023/ticketing-project-rest-23/internal/errors"
	"github.com/sa-023/ticketing-project-rest-23/internal/services"
)

// UserHandler exposes the user lifecycle operations. All routes are
// admin-gated by the router.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetUsers returns all users sorted by first name
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.ListAll()
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to retrieve users")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Users are successfully retrieved", http.StatusOK, users))
}

// GetUserByUserName returns a single user
func (h *UserHandler) GetUserByUserName(c *gin.Context) {
	user, err := h.userService.FindByUserName(c.Param("username"))
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, dto.OK("User is successfully retrieved", http.StatusOK, user))
}

// GetUsersByRole returns users whose role description matches, case-insensitively
func (h *UserHandler) GetUsersByRole(c *gin.Context) {
	users, err := h.userService.ListAllByRole(c.Param("role"))
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to retrieve users")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Users are successfully retrieved", http.StatusOK, users))
}

// CreateUser registers a user and provisions the identity remotely
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.UserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, dto.OK("User is successfully created", http.StatusCreated, user))
}

// UpdateUser updates a user; the username in the payload is the lookup key
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Update(req)
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, dto.OK("User is successfully updated", http.StatusOK, user))
}

// DeleteUser soft-deletes a user after the eligibility check
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.Delete(c.Param("username")); err != nil {
		apierrors.HandleServiceError(c, err, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("User is successfully deleted", http.StatusOK))
}

// PurgeUser hard-deletes a user, bypassing the eligibility check
func (h *UserHandler) PurgeUser(c *gin.Context) {
	if err := h.userService.DeleteByUserName(c.Param("username")); err != nil {
		apierrors.HandleServiceError(c, err, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("User is successfully deleted", http.StatusOK))
}
