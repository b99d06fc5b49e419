package scoring

import (
	"strings"

	"github.com/abhisek/pathcheck/internal/answers"
)

// Dimension is one of the six WISCAR readiness dimensions.
type Dimension string

const (
	DimensionWill      Dimension = "will"
	DimensionInterest  Dimension = "interest"
	DimensionSkill     Dimension = "skill"
	DimensionCognitive Dimension = "cognitive"
	DimensionAbility   Dimension = "ability"
	DimensionRealWorld Dimension = "real_world"
)

// AllDimensions returns the dimensions in display order.
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionWill,
		DimensionInterest,
		DimensionSkill,
		DimensionCognitive,
		DimensionAbility,
		DimensionRealWorld,
	}
}

// Label returns the human-readable dimension name.
func (d Dimension) Label() string {
	switch d {
	case DimensionWill:
		return "Will"
	case DimensionInterest:
		return "Interest"
	case DimensionSkill:
		return "Skill"
	case DimensionCognitive:
		return "Cognitive"
	case DimensionAbility:
		return "Ability to Learn"
	case DimensionRealWorld:
		return "Real-World Fit"
	default:
		return string(d)
	}
}

// dimensionKeywords attributes answers to dimensions: an answer counts
// toward every dimension with a keyword contained in its question id.
var dimensionKeywords = map[Dimension][]string{
	DimensionWill:      {"motivation", "persistence", "drive"},
	DimensionInterest:  {"curiosity", "engagement", "fascination"},
	DimensionSkill:     {"technical", "analytical", "tools"},
	DimensionCognitive: {"reasoning", "problem-solving", "analysis"},
	DimensionAbility:   {"learning", "adaptation", "growth"},
	DimensionRealWorld: {"fit", "environment", "culture"},
}

// Keywords returns the question-id keywords of a dimension.
func Keywords(d Dimension) []string {
	return append([]string(nil), dimensionKeywords[d]...)
}

// textAnswerValue is what a non-numeric answer contributes to a dimension.
const textAnswerValue = 5

// neutralDimensionScore is used when no answer contributes to a dimension.
const neutralDimensionScore = 50

// WISCARScores holds the six dimension scores on a 0-100 scale.
type WISCARScores struct {
	Will      int `json:"will"`
	Interest  int `json:"interest"`
	Skill     int `json:"skill"`
	Cognitive int `json:"cognitive"`
	Ability   int `json:"ability"`
	RealWorld int `json:"real_world"`
}

// Get returns the score of one dimension.
func (w WISCARScores) Get(d Dimension) int {
	switch d {
	case DimensionWill:
		return w.Will
	case DimensionInterest:
		return w.Interest
	case DimensionSkill:
		return w.Skill
	case DimensionCognitive:
		return w.Cognitive
	case DimensionAbility:
		return w.Ability
	case DimensionRealWorld:
		return w.RealWorld
	default:
		return 0
	}
}

func (w *WISCARScores) set(d Dimension, v int) {
	switch d {
	case DimensionWill:
		w.Will = v
	case DimensionInterest:
		w.Interest = v
	case DimensionSkill:
		w.Skill = v
	case DimensionCognitive:
		w.Cognitive = v
	case DimensionAbility:
		w.Ability = v
	case DimensionRealWorld:
		w.RealWorld = v
	}
}

// Mean returns the unrounded mean of the six dimension scores.
func (w WISCARScores) Mean() float64 {
	sum := 0
	for _, d := range AllDimensions() {
		sum += w.Get(d)
	}
	return float64(sum) / float64(len(AllDimensions()))
}

// WISCAR scores each dimension as the rounded mean of its contributing
// answers times ten. Numeric answers contribute their value and text
// answers contribute 5.
func WISCAR(set answers.Set) WISCARScores {
	var out WISCARScores
	ids := set.IDs()
	for _, d := range AllDimensions() {
		var sum float64
		var n int
		for _, id := range ids {
			if !matchesDimension(id, d) {
				continue
			}
			a := set[id]
			if v, ok := a.Float(); ok {
				sum += v
			} else {
				sum += textAnswerValue
			}
			n++
		}
		score := neutralDimensionScore
		if n > 0 {
			score = Round(sum / float64(n) * 10)
		}
		out.set(d, score)
	}
	return out
}

func matchesDimension(id string, d Dimension) bool {
	for _, kw := range dimensionKeywords[d] {
		if strings.Contains(id, kw) {
			return true
		}
	}
	return false
}
