package middleware

import "github.com/gin-gonic/gin"

const (
	CtxUserID   = "CurrentUserID"
	CtxUsername = "CurrentUsername"
)

// InjectUser кладёт данные сессии в контекст, чтобы шаблоны могли показать имя в шапке.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid, username, ok := CurrentUser(c); ok {
			c.Set(CtxUserID, uid)
			c.Set(CtxUsername, username)
		}
		c.Next()
	}
}
