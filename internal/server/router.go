package server

import (
	"fmt"
	"net/http"

	"diabetes-predictor/internal/config"
	"diabetes-predictor/internal/handlers"
	"diabetes-predictor/internal/middleware"
	"diabetes-predictor/internal/predictor"
	"diabetes-predictor/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const sessionName = "session"

func NewRouter(cfg *config.Config, p *predictor.Predictor) (*gin.Engine, error) {
	r := gin.Default()

	r.StaticFS("/static", http.FS(web.Static()))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	authKey, encKey, err := middleware.SessionKeys(cfg.SessionSecret)
	if err != nil {
		return nil, err
	}
	store := cookie.NewStore(authKey, encKey)
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	r.Use(middleware.InjectUser())

	// ГЛАВНАЯ И ИНФОРМАЦИОННЫЕ СТРАНИЦЫ
	r.GET("/", handlers.HomePage)
	r.GET("/diet", handlers.DietPage)
	r.GET("/medication", handlers.MedicationPage)
	r.GET("/exercise", handlers.ExercisePage)

	// AUTH
	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	// ТЕСТ — доступен без входа, в историю пишется только при активной сессии
	r.GET("/test", handlers.ShowTest)
	r.POST("/test", handlers.Predict(p))

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())
	auth.GET("/account", handlers.Account)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r, nil
}
