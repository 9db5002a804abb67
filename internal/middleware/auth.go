package middleware

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sa-023/ticketing-project-rest-23/internal/constants"
	apierrors "github.com/sa-023/ticketing-project-rest-23/internal/errors"
)

// RequireAuth checks that the session carries an authenticated principal
// (username + role) and exposes it on the request context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		username := session.Get(constants.ContextKeyUsername)
		role := session.Get(constants.ContextKeyRole)

		if username == nil || role == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUsername, username)
		c.Set(constants.ContextKeyRole, role)
		c.Next()
	}
}

// RequireRoles allows only principals whose role description matches one of
// the given descriptions, case-insensitively.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := GetPrincipal(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if strings.EqualFold(role, allowed) {
				c.Next()
				return
			}
		}

		apierrors.Forbidden(c, "")
		c.Abort()
	}
}

// GetPrincipal retrieves the authenticated username and role from context
func GetPrincipal(c *gin.Context) (username, role string, ok bool) {
	usernameValue, exists := c.Get(constants.ContextKeyUsername)
	if !exists {
		return "", "", false
	}
	roleValue, exists := c.Get(constants.ContextKeyRole)
	if !exists {
		return "", "", false
	}

	username, usernameOK := usernameValue.(string)
	role, roleOK := roleValue.(string)
	if !usernameOK || !roleOK {
		return "", "", false
	}
	return username, role, true
}
