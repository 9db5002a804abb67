package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sa-023/ticketing-project-rest-23/internal/constants"
	"github.com/sa-023/ticketing-project-rest-23/internal/dto"
	apierrors "github.com/sa-023/ticketing-project-rest-23/internal/errors"
	"github.com/sa-023/ticketing-project-rest-23/internal/services"
)

// AuthHandler establishes and tears down the authenticated session that
// supplies the principal consumed by the lifecycle operations.
type AuthHandler struct {
	userService *services.UserService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// Login verifies credentials and stores username + role in the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		UserName string `json:"user_name" binding:"required"`
		PassWord string `json:"pass_word" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Authenticate(req.UserName, req.PassWord)
	if err != nil {
		apierrors.HandleServiceError(c, err, "Failed to login")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUsername, user.UserName)
	session.Set(constants.ContextKeyRole, user.Role)
	if err := session.Save(); err != nil {
		apierrors.RespondWithError(c, http.StatusInternalServerError, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Login is successful", http.StatusOK, user))
}

// Logout clears the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.RespondWithError(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Logout is successful", http.StatusOK))
}
