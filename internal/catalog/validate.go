package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// validateSections performs all structural checks on a catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateSections(sections []Section) error {
	var errs []string

	keys := AllSectionKeys()
	if len(sections) != len(keys) {
		errs = append(errs, fmt.Sprintf("expected %d sections, got %d", len(keys), len(sections)))
	}
	for i, s := range sections {
		if i < len(keys) && s.Key != keys[i] {
			errs = append(errs, fmt.Sprintf("section %d: expected key %q, got %q", i, keys[i], s.Key))
		}
		if s.Name == "" {
			errs = append(errs, fmt.Sprintf("section %q has no name", s.Key))
		}
		if len(s.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("section %q has no questions", s.Key))
		}
	}

	seen := make(map[string]bool)
	for _, s := range sections {
		for i, q := range s.Questions {
			prefix := fmt.Sprintf("section %q question %d", s.Key, i)
			if q.ID == "" {
				errs = append(errs, prefix+": empty id")
			} else {
				if seen[q.ID] {
					errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
				}
				seen[q.ID] = true
				prefix = fmt.Sprintf("question %q", q.ID)
			}
			if q.Title == "" {
				errs = append(errs, prefix+": empty title")
			}
			if q.Category == "" {
				errs = append(errs, prefix+": empty category")
			}
			errs = append(errs, validateKind(prefix, q)...)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// validateKind checks the kind-specific parameters of a question.
func validateKind(prefix string, q Question) []string {
	var errs []string
	switch q.Kind {
	case KindMultipleChoice:
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("%s: multiple-choice needs at least 2 options, got %d", prefix, len(q.Options)))
		}
		for i, opt := range q.Options {
			if opt == "" {
				errs = append(errs, fmt.Sprintf("%s: option %d is empty", prefix, i))
			}
			if slices.Index(q.Options, opt) != i {
				errs = append(errs, fmt.Sprintf("%s: duplicate option %q", prefix, opt))
			}
		}
	case KindScale:
		if q.ScaleRange[0] >= q.ScaleRange[1] {
			errs = append(errs, fmt.Sprintf("%s: scale range must have min < max, got [%d, %d]", prefix, q.ScaleRange[0], q.ScaleRange[1]))
		}
		if q.ScaleLabels[0] == "" || q.ScaleLabels[1] == "" {
			errs = append(errs, prefix+": scale needs both end labels")
		}
	case KindLikert:
		if len(q.Options) > 0 {
			errs = append(errs, prefix+": likert questions use the fixed agreement labels and must not declare options")
		}
	default:
		errs = append(errs, fmt.Sprintf("%s: unknown question type %q", prefix, q.Kind))
	}
	return errs
}
