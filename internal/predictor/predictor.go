// Package predictor держит артефакты модели и выполняет предсказание типа диабета.
package predictor

import "fmt"

// Predictor объединяет лес и энкодер. После создания только читается.
type Predictor struct {
	model   *Forest
	encoder *Encoder
}

func New(model *Forest, encoder *Encoder) (*Predictor, error) {
	if model.NFeatures != NumFeatures {
		return nil, fmt.Errorf("%w: model expects %d, app provides %d", ErrFeatureCount, model.NFeatures, NumFeatures)
	}
	return &Predictor{model: model, encoder: encoder}, nil
}

func Load(modelPath, encoderPath string) (*Predictor, error) {
	model, err := LoadForest(modelPath)
	if err != nil {
		return nil, err
	}
	encoder, err := LoadEncoder(encoderPath)
	if err != nil {
		return nil, err
	}
	return New(model, encoder)
}

type Input struct {
	Age           int
	BMI           float64
	Insulin       int
	Glucose       int
	FamilyHistory string
}

type Result struct {
	Features Features
	Class    int
	Label    string
}

func (p *Predictor) Encoder() *Encoder { return p.encoder }

// Predict нормализует FamilyHistory, кодирует её и прогоняет вектор через модель.
// Для неизвестной категории возвращает ErrUnknownCategory, модель не вызывается.
func (p *Predictor) Predict(in Input) (*Result, error) {
	fh := Normalize(in.FamilyHistory)
	code, err := p.encoder.Transform(fh)
	if err != nil {
		return nil, err
	}

	features := NewFeatures(in.Age, in.BMI, in.Insulin, in.Glucose, code)
	class, err := p.model.Predict(features[:])
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	return &Result{
		Features: features,
		Class:    class,
		Label:    Label(class),
	}, nil
}
