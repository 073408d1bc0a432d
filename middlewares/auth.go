package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Yon-ln/33s/utils"
)

// TokenCookie is where the login flow parks the admin token.
const TokenCookie = "authToken"

// AuthMiddleware checks the token and, if roles are given, the role.
// Browser page loads without a valid token are sent to /login; JSON
// requests get a 401 envelope.
func AuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			reject(c, http.StatusUnauthorized, "missing or invalid token")
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			reject(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				reject(c, http.StatusForbidden, "forbidden")
				return
			}
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}

func reject(c *gin.Context, status int, msg string) {
	if wantsHTML(c) {
		c.Redirect(http.StatusFound, "/login")
	} else {
		c.JSON(status, gin.H{"ok": false, "error": msg})
	}
	c.Abort()
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
