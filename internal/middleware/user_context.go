package middleware

import (
	"taskmaster/internal/database"
	"taskmaster/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// InjectUser resolves the session user once per request so handlers can
// attribute mutations without re-reading the session.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				var user models.User
				if err := database.DB.First(&user, uid).Error; err == nil {
					c.Set("CurrentUser", user)
				}
			}
		}

		c.Next()
	}
}
