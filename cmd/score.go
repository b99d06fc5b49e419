package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pathcheck/internal/answers"
	"github.com/abhisek/pathcheck/internal/assessment"
	"github.com/abhisek/pathcheck/internal/catalog"
	"github.com/abhisek/pathcheck/internal/coach"
	"github.com/abhisek/pathcheck/internal/logging"
	"github.com/abhisek/pathcheck/internal/report"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an answers file without the interactive UI",
	Long: "Score reads a YAML or JSON answers file of the form\n" +
		"{psychometric: {id: value}, technical: {...}, wiscar: {...}}\n" +
		"and prints the results.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("answers")
		format, _ := cmd.Flags().GetString("format")
		withCoach, _ := cmd.Flags().GetBool("coach")

		if format != "text" && format != "json" {
			return fmt.Errorf("unknown format %q (want text or json)", format)
		}

		logger, err := logging.NewConsole(cmd.ErrOrStderr(), "warn")
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		sets, err := answers.DecodeFile(path)
		if err != nil {
			return err
		}
		for _, id := range sets.Unknown() {
			logger.Warn("answer does not match any catalog question; it still counts under the section scoring rules", zap.String("question", id))
		}

		st := assessment.New(assessment.Options{})
		for _, key := range catalog.AllSectionKeys() {
			for id, a := range sets.Section(key) {
				st.RecordAnswer(key, id, a)
			}
		}

		rep := report.Report{
			GeneratedAt: time.Now(),
			SessionID:   st.SessionID(),
			Results:     st.Results(),
		}

		if withCoach {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			svc, err := buildCoach(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			if svc == nil {
				return errors.New("--coach needs an LLM provider; set one of ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY or OPENROUTER_API_KEY")
			}
			n, err := svc.Narrate(cmd.Context(), coach.Input{Results: rep.Results, Answers: st.Answers()})
			if err != nil {
				logger.Warn("coach narrative unavailable", zap.Error(err))
			} else {
				rep.Narrative = n
			}
		}

		out := cmd.OutOrStdout()
		if format == "json" {
			return report.WriteJSON(out, rep)
		}
		return report.WriteText(out, rep)
	},
}

func init() {
	scoreCmd.Flags().String("answers", "", "Path to the answers file (.yaml, .yml or .json)")
	scoreCmd.Flags().String("format", "text", "Output format: text or json")
	scoreCmd.Flags().Bool("coach", false, "Ask the configured LLM for a narrative")
	_ = scoreCmd.MarkFlagRequired("answers")
}
