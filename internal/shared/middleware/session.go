package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phongnguyen123/treow-physio-sub000/pkg/session"
)

// SessionCookieName là cookie chứa admin session token
const SessionCookieName = "admin_session"

// AdminSession gate toàn bộ /admin/* routes qua signed session cookie.
// Invalid hoặc missing cookie → 401 generic, không leak chi tiết.
func AdminSession(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || !manager.ValidateSession(token) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Phiên đăng nhập không hợp lệ",
				},
			})
			c.Abort()
			return
		}

		if username, err := manager.Username(token); err == nil {
			c.Set("admin_username", username)
		}

		c.Next()
	}
}
