package handlers

import (
	"net/http"

	"diabetes-predictor/internal/database"
	"diabetes-predictor/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	HomePage       = page("home.html")
	DietPage       = page("diet.html")
	MedicationPage = page("medication.html")
	ExercisePage   = page("exercise.html")
)

// Account — история предсказаний. Доступ проверяет middleware.RequireAuth.
func Account(c *gin.Context) {
	uid, username, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	history, err := database.ListHistory(uid)
	if err != nil {
		log.Error().Err(err).Uint("user_id", uid).Msg("failed to load history")
		c.String(http.StatusInternalServerError, "failed to load history")
		return
	}

	render(c, http.StatusOK, "account.html", gin.H{
		"username": username,
		"history":  history,
	})
}
