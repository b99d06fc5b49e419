package answers

import (
	"maps"
	"slices"

	"github.com/abhisek/pathcheck/internal/catalog"
)

// Set maps question ids to their recorded answers. A key is present only
// once the question has been answered.
type Set map[string]Answer

// Sets holds one answer set per catalog section.
type Sets struct {
	Psychometric Set `json:"psychometric,omitempty" yaml:"psychometric,omitempty"`
	Technical    Set `json:"technical,omitempty" yaml:"technical,omitempty"`
	WISCAR       Set `json:"wiscar,omitempty" yaml:"wiscar,omitempty"`
}

// Section returns the answer set for a section key. Unknown keys return nil.
func (s Sets) Section(key catalog.SectionKey) Set {
	switch key {
	case catalog.SectionPsychometric:
		return s.Psychometric
	case catalog.SectionTechnical:
		return s.Technical
	case catalog.SectionWISCAR:
		return s.WISCAR
	default:
		return nil
	}
}

// Put records an answer, overwriting any previous answer for the id.
// Unknown section keys are ignored.
func (s *Sets) Put(key catalog.SectionKey, id string, a Answer) {
	var set *Set
	switch key {
	case catalog.SectionPsychometric:
		set = &s.Psychometric
	case catalog.SectionTechnical:
		set = &s.Technical
	case catalog.SectionWISCAR:
		set = &s.WISCAR
	default:
		return
	}
	if *set == nil {
		*set = make(Set)
	}
	(*set)[id] = a
}

// Get returns the answer recorded for id in the given section.
func (s Sets) Get(key catalog.SectionKey, id string) (Answer, bool) {
	a, ok := s.Section(key)[id]
	return a, ok
}

// IDs returns the question ids in the set in sorted order.
func (s Set) IDs() []string {
	return slices.Sorted(maps.Keys(s))
}

// Len returns the number of answers across all sections.
func (s Sets) Len() int {
	return len(s.Psychometric) + len(s.Technical) + len(s.WISCAR)
}

// Clone returns a deep copy.
func (s Sets) Clone() Sets {
	return Sets{
		Psychometric: maps.Clone(s.Psychometric),
		Technical:    maps.Clone(s.Technical),
		WISCAR:       maps.Clone(s.WISCAR),
	}
}

// Unknown returns "section/id" for every recorded answer whose id is not a
// catalog question of that section. Such answers are still scored under the
// section's rules like any other answer.
func (s Sets) Unknown() []string {
	var out []string
	for _, key := range catalog.AllSectionKeys() {
		for _, id := range s.Section(key).IDs() {
			if _, sec, ok := catalog.QuestionByID(id); !ok || sec != key {
				out = append(out, string(key)+"/"+id)
			}
		}
	}
	return out
}
