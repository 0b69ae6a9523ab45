package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the user id the auth middleware stored on the
// context, zero when the request never passed authentication.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentRole returns the caller's role claim, empty when unauthenticated.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
