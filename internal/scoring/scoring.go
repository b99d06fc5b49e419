// Package scoring turns recorded answers into the PathCheck scores and
// recommendation. Every function here is pure.
package scoring

import (
	"math"

	"github.com/abhisek/pathcheck/internal/answers"
)

// Recommendation is the overall YES / MAYBE / NO verdict.
type Recommendation string

const (
	RecommendYes   Recommendation = "YES"
	RecommendMaybe Recommendation = "MAYBE"
	RecommendNo    Recommendation = "NO"
)

// Recommendation thresholds on the overall score.
const (
	YesThreshold   = 75
	MaybeThreshold = 50
)

// Overall score weights.
const (
	PsychometricWeight = 0.3
	TechnicalWeight    = 0.4
	WISCARWeight       = 0.3
)

// Results is everything derived from a full set of answers.
type Results struct {
	PsychometricScore int            `json:"psychometric_score"`
	TechnicalScore    int            `json:"technical_score"`
	WISCAR            WISCARScores   `json:"wiscar"`
	OverallScore      int            `json:"overall_score"`
	Recommendation    Recommendation `json:"recommendation"`
	Headline          string         `json:"headline"`
	Summary           string         `json:"summary"`

	PsychometricInterpretation string `json:"psychometric_interpretation"`
	TechnicalInterpretation    string `json:"technical_interpretation"`
	OverallInterpretation      string `json:"overall_interpretation"`

	Insights     []string `json:"insights"`
	CareerPaths  []string `json:"career_paths"`
	LearningPath []string `json:"learning_path"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// Compute scores a full set of answers.
func Compute(sets answers.Sets) Results {
	psych := PsychometricScore(sets.Psychometric)
	tech := TechnicalScore(sets.Technical)
	wiscar := WISCAR(sets.WISCAR)
	overall := OverallScore(psych, tech, wiscar)
	rec := Recommend(overall)

	r := Results{
		PsychometricScore: psych,
		TechnicalScore:    tech,
		WISCAR:            wiscar,
		OverallScore:      overall,
		Recommendation:    rec,
		Headline:          Headline(rec),
		Summary:           Summary(rec),

		PsychometricInterpretation: PsychometricInterpretation(psych),
		TechnicalInterpretation:    TechnicalInterpretation(tech),
		OverallInterpretation:      OverallInterpretation(overall),

		Insights:     Insights(psych, tech, overall),
		CareerPaths:  CareerPaths(),
		LearningPath: LearningPath(),
	}
	if rec == RecommendNo {
		r.Alternatives = Alternatives()
	}
	return r
}

// PsychometricScore is the rounded mean of the numeric answers in the set.
// Text answers are ignored; a set without numeric answers scores 0. Values
// are summed in id order so the result does not depend on map iteration.
func PsychometricScore(set answers.Set) int {
	var sum float64
	var n int
	for _, id := range set.IDs() {
		if v, ok := set[id].Float(); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return Round(sum / float64(n))
}

// TechnicalScore is the percentage of answered technical questions that
// are correct under the technical rule table.
func TechnicalScore(set answers.Set) int {
	if len(set) == 0 {
		return 0
	}
	correct := 0
	for id, a := range set {
		if IsCorrect(id, a) {
			correct++
		}
	}
	return Round(float64(correct) / float64(len(set)) * 100)
}

// OverallScore weights the psychometric, technical and mean WISCAR scores.
func OverallScore(psychometric, technical int, wiscar WISCARScores) int {
	return Round(float64(psychometric)*PsychometricWeight +
		float64(technical)*TechnicalWeight +
		wiscar.Mean()*WISCARWeight)
}

// Recommend maps an overall score to a recommendation tier.
func Recommend(overall int) Recommendation {
	switch {
	case overall >= YesThreshold:
		return RecommendYes
	case overall >= MaybeThreshold:
		return RecommendMaybe
	default:
		return RecommendNo
	}
}

// Round rounds half up, so 2.5 becomes 3 and -2.5 becomes -2.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}
