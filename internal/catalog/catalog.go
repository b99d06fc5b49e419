package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// document is the on-disk shape of catalog.yaml.
type document struct {
	Sections []Section `yaml:"sections"`
}

// index holds the decoded catalog with lookup tables.
type index struct {
	sections []Section
	byID     map[string]Question
	sectOf   map[string]SectionKey
	total    int
}

// c is the package-level catalog singleton, set by init().
var c *index

func init() {
	sections, err := Parse(catalogYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
	}
	c = buildIndex(sections)
}

// Parse decodes a catalog document and validates it.
func Parse(data []byte) ([]Section, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validateSections(doc.Sections); err != nil {
		return nil, err
	}
	return doc.Sections, nil
}

func buildIndex(sections []Section) *index {
	ix := &index{
		sections: sections,
		byID:     make(map[string]Question),
		sectOf:   make(map[string]SectionKey),
	}
	for _, s := range sections {
		for _, q := range s.Questions {
			ix.byID[q.ID] = q
			ix.sectOf[q.ID] = s.Key
		}
		ix.total += len(s.Questions)
	}
	return ix
}

// Sections returns the catalog sections in asking order.
// The returned slice is a copy; the questions themselves are shared values.
func Sections() []Section {
	out := make([]Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// SectionByKey returns the section with the given key.
func SectionByKey(key SectionKey) (Section, bool) {
	for _, s := range c.sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// QuestionByID returns the question with the given id and the key of the
// section it belongs to.
func QuestionByID(id string) (Question, SectionKey, bool) {
	q, ok := c.byID[id]
	if !ok {
		return Question{}, "", false
	}
	return q, c.sectOf[id], true
}

// TotalQuestions returns the number of questions across all sections.
func TotalQuestions() int {
	return c.total
}

// Validate runs the structural checks against the embedded catalog.
func Validate() error {
	return validateSections(c.sections)
}
