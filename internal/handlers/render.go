package handlers

import (
	"html/template"
	"net/http"

	"diabetes-predictor/internal/middleware"

	"github.com/gin-gonic/gin"
)

// render — обёртка над c.HTML, которая во все шаблоны прокидывает текущего пользователя.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	// Пытаемся достать пользователя, которого положил middleware.InjectUser
	if name, ok := c.Get(middleware.CtxUsername); ok {
		data["CurrentUsername"] = name
		data["isAuthed"] = true
	}

	c.HTML(status, tmpl, data)
}

// errorPage отдаёт голый HTML с текстом ошибки, как в исходном приложении.
func errorPage(c *gin.Context, status int, msg string) {
	body := "<h1>Error: " + template.HTMLEscapeString(msg) + "</h1>"
	c.Data(status, "text/html; charset=utf-8", []byte(body))
}

func page(tmpl string) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, tmpl, nil)
	}
}
