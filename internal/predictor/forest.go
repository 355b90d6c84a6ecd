package predictor

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Node — узел дерева решений. Лист, если Left == -1.
// Переход влево при x[Feature] <= Threshold.
type Node struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value"`
}

type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Forest — обученный случайный лес. После загрузки только читается.
type Forest struct {
	NFeatures int    `json:"n_features"`
	Classes   []int  `json:"classes"`
	Trees     []Tree `json:"trees"`
}

// Predict возвращает класс с наибольшей средней вероятностью по деревьям.
func (f *Forest) Predict(x []float64) (int, error) {
	proba, err := f.PredictProba(x)
	if err != nil {
		return 0, err
	}
	best := 0
	for i, p := range proba {
		if p > proba[best] {
			best = i
		}
	}
	return f.Classes[best], nil
}

func (f *Forest) PredictProba(x []float64) ([]float64, error) {
	if len(f.Trees) == 0 {
		return nil, ErrEmptyModel
	}
	if len(x) != f.NFeatures {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFeatureCount, len(x), f.NFeatures)
	}

	sum := make([]float64, len(f.Classes))
	for i := range f.Trees {
		leaf, err := f.Trees[i].leaf(x)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		var total float64
		for _, v := range leaf.Value {
			total += v
		}
		if total == 0 {
			continue
		}
		for c, v := range leaf.Value {
			sum[c] += v / total
		}
	}
	for c := range sum {
		sum[c] /= float64(len(f.Trees))
	}
	return sum, nil
}

func (t *Tree) leaf(x []float64) (*Node, error) {
	i := 0
	// защита от циклов в испорченном файле: путь не длиннее числа узлов
	for step := 0; step <= len(t.Nodes); step++ {
		if i < 0 || i >= len(t.Nodes) {
			return nil, fmt.Errorf("%w: node index %d out of range", ErrBadTree, i)
		}
		n := &t.Nodes[i]
		if n.Left == -1 {
			return n, nil
		}
		if n.Feature < 0 || n.Feature >= len(x) {
			return nil, fmt.Errorf("%w: feature %d out of range", ErrBadTree, n.Feature)
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	return nil, fmt.Errorf("%w: cycle detected", ErrBadTree)
}

func (f *Forest) validate() error {
	if len(f.Trees) == 0 {
		return ErrEmptyModel
	}
	if len(f.Classes) == 0 {
		return fmt.Errorf("%w: no classes", ErrBadTree)
	}
	for ti, t := range f.Trees {
		if len(t.Nodes) == 0 {
			return fmt.Errorf("%w: tree %d is empty", ErrBadTree, ti)
		}
		for ni, n := range t.Nodes {
			if n.Left == -1 && len(n.Value) != len(f.Classes) {
				return fmt.Errorf("%w: tree %d leaf %d has %d values for %d classes",
					ErrBadTree, ti, ni, len(n.Value), len(f.Classes))
			}
		}
	}
	return nil
}

func LoadForest(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var f Forest
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return &f, nil
}

func (f *Forest) Save(path string) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
