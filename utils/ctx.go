package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CurrentUserID returns the authenticated user's id set by the auth
// middleware, or uuid.Nil when the request is anonymous.
func CurrentUserID(c *gin.Context) uuid.UUID {
	v, _ := c.Get("userId")
	if id, ok := v.(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
