package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"diabetes-predictor/internal/database"
	"diabetes-predictor/internal/middleware"
	"diabetes-predictor/internal/predictor"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func ShowTest(c *gin.Context) {
	render(c, http.StatusOK, "test.html", nil)
}

// parseInput разбирает числовые поля формы. Диапазоны не проверяются.
func parseInput(c *gin.Context) (predictor.Input, error) {
	var in predictor.Input
	var err error

	if in.Age, err = strconv.Atoi(strings.TrimSpace(c.PostForm("Age"))); err != nil {
		return in, err
	}
	if in.BMI, err = strconv.ParseFloat(strings.TrimSpace(c.PostForm("BMI")), 64); err != nil {
		return in, err
	}
	if in.Insulin, err = strconv.Atoi(strings.TrimSpace(c.PostForm("Insulin"))); err != nil {
		return in, err
	}
	if in.Glucose, err = strconv.Atoi(strings.TrimSpace(c.PostForm("Glucose"))); err != nil {
		return in, err
	}
	in.FamilyHistory = c.PostForm("FamilyHistory")
	return in, nil
}

// Predict обрабатывает форму теста. Результат пишется в историю только при активной сессии.
func Predict(p *predictor.Predictor) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, err := parseInput(c)
		if err != nil {
			errorPage(c, http.StatusBadRequest, err.Error())
			return
		}

		res, err := p.Predict(in)
		var unknown *predictor.UnknownCategoryError
		switch {
		case errors.As(err, &unknown):
			errorPage(c, http.StatusBadRequest, "Unrecognized family history value: "+unknown.Value)
			return
		case err != nil:
			log.Error().Err(err).Msg("prediction failed")
			errorPage(c, http.StatusInternalServerError, err.Error())
			return
		}

		if uid, _, ok := middleware.CurrentUser(c); ok {
			if err := database.AppendHistory(uid, res.Features.String(), res.Label); err != nil {
				log.Error().Err(err).Uint("user_id", uid).Msg("failed to save history")
				errorPage(c, http.StatusInternalServerError, err.Error())
				return
			}
		}

		render(c, http.StatusOK, "result.html", gin.H{"result": res.Label})
	}
}
