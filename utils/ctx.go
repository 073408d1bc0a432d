package utils

import "github.com/gin-gonic/gin"

// CurrentUser reads the username the auth middleware parked on the context.
func CurrentUser(c *gin.Context) string {
	if v, ok := c.Get("username"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
