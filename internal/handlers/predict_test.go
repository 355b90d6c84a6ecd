package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formContext(values url.Values) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c
}

func TestParseInput(t *testing.T) {
	c := formContext(url.Values{
		"Age":           {" 45 "},
		"BMI":           {"28.5"},
		"Insulin":       {"130"},
		"Glucose":       {"110\n"},
		"FamilyHistory": {" Yes "},
	})

	in, err := parseInput(c)
	require.NoError(t, err)
	assert.Equal(t, 45, in.Age)
	assert.Equal(t, 28.5, in.BMI)
	assert.Equal(t, 130, in.Insulin)
	assert.Equal(t, 110, in.Glucose)
	assert.Equal(t, " Yes ", in.FamilyHistory, "normalization happens in the predictor")
}

func TestParseInputErrors(t *testing.T) {
	base := url.Values{"Age": {"1"}, "BMI": {"1"}, "Insulin": {"1"}, "Glucose": {"1"}, "FamilyHistory": {"no"}}

	for _, field := range []string{"Age", "BMI", "Insulin", "Glucose"} {
		v := url.Values{}
		for k, vals := range base {
			v[k] = vals
		}
		v.Set(field, "1.5x")

		_, err := parseInput(formContext(v))
		assert.Error(t, err, field)
	}
}

func TestErrorPageEscapes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	errorPage(c, http.StatusBadRequest, "<script>")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "<h1>Error: &lt;script&gt;</h1>", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}
