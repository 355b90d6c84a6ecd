package handlers

import (
	"errors"
	"net/http"

	"diabetes-predictor/internal/database"
	"diabetes-predictor/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", nil)
}

type credentialsForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Register всегда создаёт пользователя, даже если такое имя уже есть.
func Register(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}

	user, err := database.CreateUser(form.Username, form.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")
		c.String(http.StatusInternalServerError, "failed to create user")
		return
	}
	log.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("user registered")

	c.Redirect(http.StatusFound, "/login")
}

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

func Login(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}

	user, err := database.FindUser(form.Username, form.Password)
	if errors.Is(err, database.ErrUserNotFound) {
		c.String(http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to look up user")
		c.String(http.StatusInternalServerError, "failed to look up user")
		return
	}

	sess := sessions.Default(c)
	sess.Set(middleware.SessionUserID, user.ID)
	sess.Set(middleware.SessionUsername, form.Username)
	if err := sess.Save(); err != nil {
		log.Error().Err(err).Msg("failed to save session")
		c.String(http.StatusInternalServerError, "failed to save session")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
