package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	SessionUserID   = "user_id"
	SessionUsername = "username"
)

// CurrentUser читает пользователя из подписанной cookie. В базу не ходит.
func CurrentUser(c *gin.Context) (uint, string, bool) {
	sess := sessions.Default(c)
	uid, ok := sess.Get(SessionUserID).(uint)
	if !ok || uid == 0 {
		return 0, "", false
	}
	username, _ := sess.Get(SessionUsername).(string)
	return uid, username, true
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
