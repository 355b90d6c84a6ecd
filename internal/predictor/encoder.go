package predictor

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// Encoder сопоставляет категории FamilyHistory их коду (индекс в отсортированном списке).
type Encoder struct {
	Classes []string `json:"classes"`

	index map[string]int
}

func NewEncoder(classes []string) *Encoder {
	e := &Encoder{Classes: append([]string(nil), classes...)}
	e.buildIndex()
	return e
}

// FitEncoder строит энкодер по набору значений: уникальные, отсортированные.
func FitEncoder(values []string) *Encoder {
	seen := map[string]struct{}{}
	var classes []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		classes = append(classes, v)
	}
	sort.Strings(classes)
	return NewEncoder(classes)
}

func (e *Encoder) buildIndex() {
	e.index = make(map[string]int, len(e.Classes))
	for i, c := range e.Classes {
		e.index[c] = i
	}
}

// Normalize приводит значение к виду, в котором хранятся классы.
func Normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func (e *Encoder) Known(v string) bool {
	_, ok := e.index[v]
	return ok
}

func (e *Encoder) Transform(v string) (int, error) {
	code, ok := e.index[v]
	if !ok {
		return 0, &UnknownCategoryError{Value: v}
	}
	return code, nil
}

func LoadEncoder(path string) (*Encoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read encoder: %w", err)
	}
	var e Encoder
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decode encoder %s: %w", path, err)
	}
	if len(e.Classes) == 0 {
		return nil, fmt.Errorf("encoder %s has no classes", path)
	}
	e.buildIndex()
	return &e, nil
}

func (e *Encoder) Save(path string) error {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
