package catalog

// SectionKey names one of the fixed assessment sections.
type SectionKey string

const (
	SectionPsychometric SectionKey = "psychometric"
	SectionTechnical    SectionKey = "technical"
	SectionWISCAR       SectionKey = "wiscar"
)

// AllSectionKeys returns the section keys in the order they are asked.
func AllSectionKeys() []SectionKey {
	return []SectionKey{SectionPsychometric, SectionTechnical, SectionWISCAR}
}

// Valid reports whether k is a known section key.
func (k SectionKey) Valid() bool {
	for _, known := range AllSectionKeys() {
		if k == known {
			return true
		}
	}
	return false
}

// Section is an ordered group of questions shown under one heading.
type Section struct {
	Key          SectionKey `yaml:"key"`
	Name         string     `yaml:"name"`
	Description  string     `yaml:"description"`
	TimeEstimate string     `yaml:"time_estimate"`
	Questions    []Question `yaml:"questions"`
}

// Len returns the number of questions in the section.
func (s Section) Len() int { return len(s.Questions) }
