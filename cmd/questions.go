package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathcheck/internal/answers"
	"github.com/abhisek/pathcheck/internal/catalog"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the assessment questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("section")
		template, _ := cmd.Flags().GetBool("template")

		sections := catalog.Sections()
		if key != "" {
			sec, ok := catalog.SectionByKey(catalog.SectionKey(key))
			if !ok {
				return fmt.Errorf("unknown section %q (want one of %s)", key, sectionKeyList())
			}
			sections = []catalog.Section{sec}
		}

		out := cmd.OutOrStdout()
		if template {
			return answers.Encode(out, sampleAnswers(sections), answers.FormatYAML)
		}
		for _, sec := range sections {
			printSection(out, sec)
		}
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("section", "", "Only list one section: "+sectionKeyList())
	questionsCmd.Flags().Bool("template", false, "Print a sample answers file for the score command")
}

func sectionKeyList() string {
	keys := catalog.AllSectionKeys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}

func printSection(w io.Writer, sec catalog.Section) {
	fmt.Fprintf(w, "%s [%s] (%d questions, %s)\n", sec.Name, sec.Key, sec.Len(), sec.TimeEstimate)
	fmt.Fprintf(w, "  %s\n\n", sec.Description)
	for i, q := range sec.Questions {
		fmt.Fprintf(w, "  %d. %s  (%s, %s)\n", i+1, q.Title, q.ID, q.Kind)
		switch q.Kind {
		case catalog.KindScale:
			fmt.Fprintf(w, "       %d = %s ... %d = %s\n", q.ScaleMin(), q.ScaleLabels[0], q.ScaleMax(), q.ScaleLabels[1])
		default:
			for _, opt := range q.Choices() {
				fmt.Fprintf(w, "       - %s\n", opt)
			}
		}
	}
	fmt.Fprintln(w)
}

// sampleAnswers answers every question with its first choice or the scale
// midpoint.
func sampleAnswers(sections []catalog.Section) answers.Sets {
	var sets answers.Sets
	for _, sec := range sections {
		for _, q := range sec.Questions {
			if q.Kind == catalog.KindScale {
				sets.Put(sec.Key, q.ID, answers.Number(float64(q.ScaleMidpoint())))
				continue
			}
			sets.Put(sec.Key, q.ID, answers.Text(q.Choices()[0]))
		}
	}
	return sets
}
