package predictor

const (
	LabelNoDiabetes = "No Diabetes"
	LabelType1      = "Type 1 Diabetes"
	LabelType2      = "Type 2 Diabetes"
	LabelUnknown    = "Unknown Result"
)

func Label(class int) string {
	switch class {
	case 0:
		return LabelNoDiabetes
	case 1:
		return LabelType1
	case 2:
		return LabelType2
	default:
		return LabelUnknown
	}
}
