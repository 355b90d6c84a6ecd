package predictor

// stubForest: FamilyHistory == 0 -> класс 0; иначе Glucose <= 125 -> 1, больше -> 2.
func stubForest() *Forest {
	return &Forest{
		NFeatures: NumFeatures,
		Classes:   []int{0, 1, 2},
		Trees: []Tree{{Nodes: []Node{
			{Feature: 4, Threshold: 0.5, Left: 1, Right: 2, Value: []float64{1, 1, 1}},
			{Left: -1, Right: -1, Value: []float64{5, 0, 0}},
			{Feature: 3, Threshold: 125, Left: 3, Right: 4, Value: []float64{0, 1, 1}},
			{Left: -1, Right: -1, Value: []float64{0, 3, 1}},
			{Left: -1, Right: -1, Value: []float64{0, 0, 4}},
		}}},
	}
}
