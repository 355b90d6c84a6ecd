package predictor

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
)

const (
	FamilyHistoryColumn = "FamilyHistory"
	TargetColumn        = "DiabetesType"
)

// Dataset — признаки и целевой столбец после кодирования FamilyHistory.
type Dataset struct {
	Columns []string
	X       [][]float64
	Y       []int
	Encoder *Encoder
}

// LoadDataset читает CSV с заголовком. Признаки — все столбцы кроме последнего,
// последний должен быть DiabetesType. FamilyHistory очищается и кодируется.
func LoadDataset(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) < 2 || header[len(header)-1] != TargetColumn {
		return nil, fmt.Errorf("%w: %s must be the last column", ErrMissingColumn, TargetColumn)
	}

	fhCol := -1
	for i, h := range header[:len(header)-1] {
		if h == FamilyHistoryColumn {
			fhCol = i
		}
	}
	if fhCol < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, FamilyHistoryColumn)
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	fh := make([]string, len(records))
	for i, rec := range records {
		fh[i] = Normalize(rec[fhCol])
	}
	enc := FitEncoder(fh)

	nf := len(header) - 1
	ds := &Dataset{
		Columns: header[:nf],
		X:       make([][]float64, len(records)),
		Y:       make([]int, len(records)),
		Encoder: enc,
	}
	for i, rec := range records {
		row := make([]float64, nf)
		for j := 0; j < nf; j++ {
			if j == fhCol {
				code, _ := enc.Transform(fh[i])
				row[j] = float64(code)
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[j]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", i+2, header[j], err)
			}
			row[j] = v
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(rec[nf]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d column %s: %w", i+2, TargetColumn, err)
		}
		ds.X[i] = row
		ds.Y[i] = int(y)
	}
	return ds, nil
}

// Split перемешивает строки с заданным seed и отдаёт долю testFrac (с округлением вверх) в тест.
func (ds *Dataset) Split(testFrac float64, seed int64) (train, test *Dataset) {
	n := len(ds.Y)
	nTest := int(math.Ceil(testFrac * float64(n)))
	if nTest >= n {
		nTest = n - 1
	}
	if nTest < 0 {
		nTest = 0
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	pick := func(idx []int) *Dataset {
		out := &Dataset{Columns: ds.Columns, Encoder: ds.Encoder}
		for _, i := range idx {
			out.X = append(out.X, ds.X[i])
			out.Y = append(out.Y, ds.Y[i])
		}
		return out
	}
	return pick(perm[nTest:]), pick(perm[:nTest])
}

type TrainConfig struct {
	NTrees          int
	MaxFeatures     int // 0 — sqrt(числа признаков)
	MaxDepth        int // 0 — без ограничения
	MinSamplesSplit int
	Seed            int64
}

func DefaultTrainConfig() TrainConfig {
	return TrainConfig{NTrees: 100, MinSamplesSplit: 2, Seed: 1}
}

// Fit обучает случайный лес: бутстрэп-выборка на дерево, критерий Джини.
func Fit(ds *Dataset, cfg TrainConfig) (*Forest, error) {
	if len(ds.Y) == 0 {
		return nil, ErrEmptyDataset
	}
	if cfg.NTrees <= 0 {
		cfg.NTrees = 100
	}
	if cfg.MinSamplesSplit < 2 {
		cfg.MinSamplesSplit = 2
	}
	nf := len(ds.X[0])
	if cfg.MaxFeatures <= 0 || cfg.MaxFeatures > nf {
		cfg.MaxFeatures = int(math.Max(1, math.Floor(math.Sqrt(float64(nf)))))
	}

	classes := uniqueSorted(ds.Y)
	classIdx := make(map[int]int, len(classes))
	for i, c := range classes {
		classIdx[c] = i
	}
	y := make([]int, len(ds.Y))
	for i, v := range ds.Y {
		y[i] = classIdx[v]
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	forest := &Forest{NFeatures: nf, Classes: classes}
	n := len(y)
	for t := 0; t < cfg.NTrees; t++ {
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}
		b := &treeBuilder{x: ds.X, y: y, nClasses: len(classes), cfg: cfg, rng: rng}
		b.build(sample, 0)
		forest.Trees = append(forest.Trees, Tree{Nodes: b.nodes})
	}
	return forest, nil
}

// Accuracy — доля верно предсказанных строк.
func Accuracy(f *Forest, ds *Dataset) (float64, error) {
	if len(ds.Y) == 0 {
		return 0, ErrEmptyDataset
	}
	var ok int
	for i, x := range ds.X {
		p, err := f.Predict(x)
		if err != nil {
			return 0, err
		}
		if p == ds.Y[i] {
			ok++
		}
	}
	return float64(ok) / float64(len(ds.Y)), nil
}

type treeBuilder struct {
	x        [][]float64
	y        []int
	nClasses int
	cfg      TrainConfig
	rng      *rand.Rand
	nodes    []Node
}

func (b *treeBuilder) build(idx []int, depth int) int {
	counts := make([]float64, b.nClasses)
	for _, i := range idx {
		counts[b.y[i]]++
	}

	id := len(b.nodes)
	b.nodes = append(b.nodes, Node{Left: -1, Right: -1, Value: counts})

	if len(idx) < b.cfg.MinSamplesSplit || pure(counts) ||
		(b.cfg.MaxDepth > 0 && depth >= b.cfg.MaxDepth) {
		return id
	}

	feature, threshold, found := b.bestSplit(idx, counts)
	if !found {
		return id
	}

	var left, right []int
	for _, i := range idx {
		if b.x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	l := b.build(left, depth+1)
	r := b.build(right, depth+1)
	b.nodes[id].Feature = feature
	b.nodes[id].Threshold = threshold
	b.nodes[id].Left = l
	b.nodes[id].Right = r
	return id
}

// bestSplit перебирает признаки в случайном порядке, пока не рассмотрит MaxFeatures непостоянных.
func (b *treeBuilder) bestSplit(idx []int, total []float64) (int, float64, bool) {
	nf := len(b.x[0])
	n := float64(len(idx))
	parent := gini(total, n)

	bestGain := 0.0
	bestFeature, bestThreshold := -1, 0.0
	visited := 0

	sorted := make([]int, len(idx))
	left := make([]float64, b.nClasses)
	right := make([]float64, b.nClasses)

	for _, f := range b.rng.Perm(nf) {
		if visited >= b.cfg.MaxFeatures {
			break
		}
		copy(sorted, idx)
		sort.Slice(sorted, func(a, c int) bool { return b.x[sorted[a]][f] < b.x[sorted[c]][f] })
		if b.x[sorted[0]][f] == b.x[sorted[len(sorted)-1]][f] {
			continue
		}
		visited++

		for c := range left {
			left[c] = 0
			right[c] = total[c]
		}
		for k := 0; k < len(sorted)-1; k++ {
			cls := b.y[sorted[k]]
			left[cls]++
			right[cls]--

			cur, next := b.x[sorted[k]][f], b.x[sorted[k+1]][f]
			if cur == next {
				continue
			}
			nl := float64(k + 1)
			nr := n - nl
			gain := parent - (nl/n)*gini(left, nl) - (nr/n)*gini(right, nr)
			if gain > bestGain {
				bestGain = gain
				bestFeature = f
				bestThreshold = cur + (next-cur)/2
				if bestThreshold >= next {
					bestThreshold = cur
				}
			}
		}
	}
	return bestFeature, bestThreshold, bestFeature >= 0
}

func gini(counts []float64, n float64) float64 {
	if n == 0 {
		return 0
	}
	g := 1.0
	for _, c := range counts {
		p := c / n
		g -= p * p
	}
	return g
}

func pure(counts []float64) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

func uniqueSorted(v []int) []int {
	seen := map[int]struct{}{}
	var out []int
	for _, x := range v {
		if _, ok := seen[x]; !ok {
			seen[x] = struct{}{}
			out = append(out, x)
		}
	}
	sort.Ints(out)
	return out
}
