package scoring

import (
	"fmt"
	"slices"

	"github.com/abhisek/pathcheck/internal/answers"
)

// Rule decides whether a technical answer is correct.
type Rule interface {
	Correct(a answers.Answer) bool
	String() string
}

// ExactText matches a text answer character for character.
type ExactText string

func (r ExactText) Correct(a answers.Answer) bool {
	s, ok := a.Text()
	return ok && s == string(r)
}

func (r ExactText) String() string { return fmt.Sprintf("text == %q", string(r)) }

// AtLeast matches a numeric answer greater than or equal to the bound.
type AtLeast float64

func (r AtLeast) Correct(a answers.Answer) bool {
	v, ok := a.Float()
	return ok && v >= float64(r)
}

func (r AtLeast) String() string { return fmt.Sprintf("number >= %g", float64(r)) }

// technicalRules is the complete answer key. Ids match exactly; any
// technical question without an entry is never counted as correct.
var technicalRules = map[string]Rule{
	"balance-sheet":    ExactText("Financial position at a point in time"),
	"profit-margin":    ExactText("(Net Income / Revenue) × 100"),
	"logical-sequence": AtLeast(7),
}

// TechnicalRule returns the correctness rule for a technical question id.
func TechnicalRule(id string) (Rule, bool) {
	r, ok := technicalRules[id]
	return r, ok
}

// RuledQuestions returns the ids that have a correctness rule, sorted.
func RuledQuestions() []string {
	ids := make([]string, 0, len(technicalRules))
	for id := range technicalRules {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// IsCorrect reports whether the answer to a technical question is correct.
func IsCorrect(id string, a answers.Answer) bool {
	r, ok := technicalRules[id]
	return ok && r.Correct(a)
}
