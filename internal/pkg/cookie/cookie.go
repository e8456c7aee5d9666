package cookie

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// StaffSessionCookieName is set by the session layer after a staff login.
const StaffSessionCookieName = "staff_session"

func GetStaffSession(c *gin.Context) string {
	token, _ := c.Cookie(StaffSessionCookieName)
	return token
}

// SessionToken prefers the cookie and falls back to an Authorization bearer header.
func SessionToken(c *gin.Context) string {
	if token := GetStaffSession(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
