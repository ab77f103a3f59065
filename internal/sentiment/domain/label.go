package domain

// Label is the discrete sentiment class derived from a compound score.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"
)

// Thresholds on the VADER compound score. Both bounds are inclusive.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

func LabelForScore(compound float64) Label {
	switch {
	case compound >= PositiveThreshold:
		return LabelPositive
	case compound <= NegativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Color returns the CSS colour used to display the label.
func (l Label) Color() string {
	switch l {
	case LabelPositive:
		return "#00ff00"
	case LabelNegative:
		return "#ff4d4d"
	default:
		return "#f4d03f"
	}
}

func (l Label) Valid() bool {
	return l == LabelPositive || l == LabelNegative || l == LabelNeutral
}

// Analysis is the full polarity breakdown for one text.
type Analysis struct {
	Label    Label   `json:"label"`
	Color    string  `json:"color"`
	Compound float64 `json:"compound"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}
