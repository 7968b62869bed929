package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextKeyUserRole is the gin context key set by the auth middleware.
const ContextKeyUserRole = "user_role"

// RequireAdmin aborts the request unless the authenticated user is an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextKeyUserRole)
		if !UserRole(role).IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// OwnedResource is implemented by entities with a single owning user.
type OwnedResource interface {
	GetOwnerID() uint
}

// CanAccessResource reports whether a user may act on an owned resource.
// Admins may act on anything; everyone else only on what they own.
func CanAccessResource(userID uint, userRole UserRole, resource OwnedResource) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resource.GetOwnerID()
}
