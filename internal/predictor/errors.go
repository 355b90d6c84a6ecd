package predictor

import "errors"

var (
	ErrUnknownCategory = errors.New("unrecognized category")
	ErrFeatureCount    = errors.New("wrong number of features")
	ErrEmptyModel      = errors.New("model has no trees")
	ErrBadTree         = errors.New("malformed tree")
	ErrEmptyDataset    = errors.New("empty dataset")
	ErrMissingColumn   = errors.New("missing column")
)

// UnknownCategoryError несёт значение, которого нет среди классов энкодера.
type UnknownCategoryError struct {
	Value string
}

func (e *UnknownCategoryError) Error() string {
	return ErrUnknownCategory.Error() + ": " + e.Value
}

func (e *UnknownCategoryError) Is(target error) bool {
	return target == ErrUnknownCategory
}
