package predictor

import (
	"math"
	"strconv"
	"strings"
)

const NumFeatures = 5

// Features — вектор признаков в фиксированном порядке: Age, BMI, Insulin, Glucose, FamilyHistory.
type Features [NumFeatures]float64

func NewFeatures(age int, bmi float64, insulin, glucose, familyHistory int) Features {
	return Features{float64(age), bmi, float64(insulin), float64(glucose), float64(familyHistory)}
}

// String сериализует вектор как одну строку матрицы, все значения — float:
// [[45.0, 28.5, 130.0, 110.0, 1.0]]
func (f Features) String() string {
	var b strings.Builder
	b.WriteString("[[")
	for i, v := range f {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatFloat(v))
	}
	b.WriteString("]]")
	return b.String()
}

// formatFloat печатает число так же, как repr(float): 130.0, 28.5, 1e+16, nan, inf.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
