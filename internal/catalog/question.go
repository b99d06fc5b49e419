package catalog

// Kind identifies how a question is answered.
type Kind string

const (
	KindMultipleChoice Kind = "multiple-choice"
	KindScale          Kind = "scale"
	KindLikert         Kind = "likert"
)

// AllKinds returns the supported question kinds.
func AllKinds() []Kind {
	return []Kind{KindMultipleChoice, KindScale, KindLikert}
}

// likertLabels is the fixed 5-point agreement scale shared by every likert item.
var likertLabels = []string{
	"Strongly Disagree",
	"Disagree",
	"Neutral",
	"Agree",
	"Strongly Agree",
}

// LikertLabels returns the agreement labels in ascending order.
func LikertLabels() []string {
	out := make([]string, len(likertLabels))
	copy(out, likertLabels)
	return out
}

// Question is a single immutable catalog entry.
type Question struct {
	ID          string `yaml:"id"`
	Kind        Kind   `yaml:"type"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Category    string `yaml:"category"`

	// Options lists the choices of a multiple-choice question.
	Options []string `yaml:"options,omitempty"`

	// ScaleRange is the inclusive [min, max] of a scale question.
	ScaleRange [2]int `yaml:"scale_range,omitempty"`

	// ScaleLabels describes the low and high ends of a scale question.
	ScaleLabels [2]string `yaml:"scale_labels,omitempty"`
}

// Choices returns the selectable text values for choice-style questions:
// the options of a multiple-choice item or the likert labels. Scale
// questions have no choices.
func (q Question) Choices() []string {
	switch q.Kind {
	case KindMultipleChoice:
		out := make([]string, len(q.Options))
		copy(out, q.Options)
		return out
	case KindLikert:
		return LikertLabels()
	default:
		return nil
	}
}

// ScaleMin returns the lower bound of a scale question.
func (q Question) ScaleMin() int { return q.ScaleRange[0] }

// ScaleMax returns the upper bound of a scale question.
func (q Question) ScaleMax() int { return q.ScaleRange[1] }

// ScaleMidpoint is the value a scale control shows before the user moves it.
func (q Question) ScaleMidpoint() int {
	return (q.ScaleRange[0] + q.ScaleRange[1]) / 2
}

// InScale reports whether v lies within the scale range.
func (q Question) InScale(v int) bool {
	return v >= q.ScaleRange[0] && v <= q.ScaleRange[1]
}
