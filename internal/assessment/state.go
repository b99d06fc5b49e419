// Package assessment walks a user through the question catalog and
// records their answers.
package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathcheck/internal/answers"
	"github.com/abhisek/pathcheck/internal/catalog"
	"github.com/abhisek/pathcheck/internal/scoring"
)

// Options tunes navigation behaviour.
type Options struct {
	// CrossSectionBack lets Retreat from the first question of a section
	// move to the last question of the previous section.
	CrossSectionBack bool
}

// State tracks one run through the catalog. Position is (section, question)
// until the final Advance, after which the state is complete and frozen.
// The zero value is not usable; call New.
type State struct {
	sessionID string
	startedAt time.Time
	sections  []catalog.Section
	opts      Options

	section  int
	question int
	complete bool
	answers  answers.Sets
}

// New returns a fresh state positioned at the first catalog question.
func New(opts Options) *State {
	return newState(catalog.Sections(), opts)
}

func newState(sections []catalog.Section, opts Options) *State {
	return &State{
		sessionID: uuid.NewString(),
		startedAt: time.Now(),
		sections:  sections,
		opts:      opts,
	}
}

// SessionID identifies this run in logs.
func (s *State) SessionID() string { return s.sessionID }

// StartedAt is when the state was created.
func (s *State) StartedAt() time.Time { return s.startedAt }

// SectionIndex returns the current section index.
func (s *State) SectionIndex() int { return s.section }

// QuestionIndex returns the current question index within the section.
func (s *State) QuestionIndex() int { return s.question }

// IsComplete reports whether every question has been passed.
func (s *State) IsComplete() bool { return s.complete }

// Sections returns the sections this state walks through.
func (s *State) Sections() []catalog.Section {
	out := make([]catalog.Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// CurrentSection returns the section at the current position. Once the
// assessment is complete this is the last section.
func (s *State) CurrentSection() catalog.Section {
	return s.sections[s.section]
}

// CurrentQuestion returns the question at the current position. It returns
// false once the assessment is complete.
func (s *State) CurrentQuestion() (catalog.Question, bool) {
	if s.complete {
		return catalog.Question{}, false
	}
	return s.sections[s.section].Questions[s.question], true
}

// CurrentAnswer returns the answer already recorded for the current
// question, if any.
func (s *State) CurrentAnswer() (answers.Answer, bool) {
	q, ok := s.CurrentQuestion()
	if !ok {
		return answers.Answer{}, false
	}
	return s.answers.Get(s.CurrentSection().Key, q.ID)
}

// RecordAnswer stores an answer for a question, replacing any earlier
// answer. The value is not checked against the question kind, and the
// question need not be the current one.
func (s *State) RecordAnswer(section catalog.SectionKey, questionID string, a answers.Answer) {
	s.answers.Put(section, questionID, a)
}

// AnswerCurrent records an answer for the current question. It is a no-op
// once the assessment is complete.
func (s *State) AnswerCurrent(a answers.Answer) {
	q, ok := s.CurrentQuestion()
	if !ok {
		return
	}
	s.RecordAnswer(s.CurrentSection().Key, q.ID, a)
}

// Advance moves to the next question, rolling over into the next section,
// and marks the assessment complete after the last question. Advancing a
// complete assessment does nothing.
func (s *State) Advance() {
	if s.complete {
		return
	}
	switch {
	case s.question < len(s.sections[s.section].Questions)-1:
		s.question++
	case s.section < len(s.sections)-1:
		s.section++
		s.question = 0
	default:
		s.complete = true
	}
}

// Retreat moves to the previous question within the current section. At
// the first question of a section it does nothing unless CrossSectionBack
// is set. Retreating a complete assessment does nothing.
func (s *State) Retreat() {
	if !s.CanRetreat() {
		return
	}
	if s.question > 0 {
		s.question--
		return
	}
	s.section--
	s.question = len(s.sections[s.section].Questions) - 1
}

// CanRetreat reports whether Retreat would move.
func (s *State) CanRetreat() bool {
	if s.complete {
		return false
	}
	if s.question > 0 {
		return true
	}
	return s.opts.CrossSectionBack && s.section > 0
}

// IsLastQuestion reports whether the next Advance completes the assessment.
func (s *State) IsLastQuestion() bool {
	return !s.complete &&
		s.section == len(s.sections)-1 &&
		s.question == len(s.sections[s.section].Questions)-1
}

// TotalQuestions returns the number of questions across all sections.
func (s *State) TotalQuestions() int {
	n := 0
	for _, sec := range s.sections {
		n += len(sec.Questions)
	}
	return n
}

// Position returns the 1-based number of the current question across all
// sections. A complete assessment reports TotalQuestions.
func (s *State) Position() int {
	if s.complete {
		return s.TotalQuestions()
	}
	n := 0
	for i := 0; i < s.section; i++ {
		n += len(s.sections[i].Questions)
	}
	return n + s.question + 1
}

// Progress returns the fraction of questions passed, in [0, 1].
func (s *State) Progress() float64 {
	total := s.TotalQuestions()
	if total == 0 {
		return 0
	}
	if s.complete {
		return 1
	}
	return float64(s.Position()-1) / float64(total)
}

// Answers returns a copy of everything recorded so far.
func (s *State) Answers() answers.Sets {
	return s.answers.Clone()
}

// Results scores the recorded answers. It does not modify the state and may
// be called at any time.
func (s *State) Results() scoring.Results {
	return scoring.Compute(s.answers)
}
