package predictor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// синтетический набор: без семейной истории — 0, с ней глюкоза решает между 1 и 2
func syntheticCSV(rows int) string {
	var b strings.Builder
	b.WriteString("Age,BMI,Insulin,Glucose,FamilyHistory,DiabetesType\n")
	for i := 0; i < rows; i++ {
		glucose := 80 + (i*37)%120
		fh, target := " No", 0
		if i%2 == 1 {
			fh = "YES "
			target = 1
			if glucose > 140 {
				target = 2
			}
		}
		fmt.Fprintf(&b, "%d,%.1f,%d,%d,%s,%d\n", 20+i%50, 18+float64(i%20), 60+i%90, glucose, fh, target)
	}
	return b.String()
}

func TestLoadDataset(t *testing.T) {
	ds, err := LoadDataset(strings.NewReader(syntheticCSV(10)))
	require.NoError(t, err)

	assert.Equal(t, []string{"Age", "BMI", "Insulin", "Glucose", "FamilyHistory"}, ds.Columns)
	assert.Equal(t, []string{"no", "yes"}, ds.Encoder.Classes)
	require.Len(t, ds.X, 10)
	assert.Equal(t, 0.0, ds.X[0][4])
	assert.Equal(t, 1.0, ds.X[1][4])
}

func TestLoadDatasetErrors(t *testing.T) {
	_, err := LoadDataset(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = LoadDataset(strings.NewReader("Age,FamilyHistory,Outcome\n1,yes,0\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = LoadDataset(strings.NewReader("Age,Glucose,DiabetesType\n1,2,0\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = LoadDataset(strings.NewReader("Age,FamilyHistory,DiabetesType\n"))
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = LoadDataset(strings.NewReader("Age,FamilyHistory,DiabetesType\nold,yes,0\n"))
	assert.Error(t, err)
}

func TestSplit(t *testing.T) {
	ds, err := LoadDataset(strings.NewReader(syntheticCSV(25)))
	require.NoError(t, err)

	train, test := ds.Split(0.1, 60)
	assert.Len(t, test.Y, 3)
	assert.Len(t, train.Y, 22)

	train2, test2 := ds.Split(0.1, 60)
	assert.Equal(t, train.Y, train2.Y)
	assert.Equal(t, test.X, test2.X)
}

func TestFitLearnsSyntheticRule(t *testing.T) {
	ds, err := LoadDataset(strings.NewReader(syntheticCSV(200)))
	require.NoError(t, err)

	train, test := ds.Split(0.1, 60)
	cfg := DefaultTrainConfig()
	cfg.NTrees = 25
	forest, err := Fit(train, cfg)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, forest.Classes)
	assert.Equal(t, NumFeatures, forest.NFeatures)
	assert.Len(t, forest.Trees, 25)
	require.NoError(t, forest.validate())

	acc, err := Accuracy(forest, test)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, acc, 0.8)

	trainAcc, err := Accuracy(forest, train)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, trainAcc, 0.95)
}

func TestFitEmpty(t *testing.T) {
	_, err := Fit(&Dataset{}, DefaultTrainConfig())
	assert.ErrorIs(t, err, ErrEmptyDataset)
}
