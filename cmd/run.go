package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pathcheck/internal/app"
	"github.com/abhisek/pathcheck/internal/assessment"
	"github.com/abhisek/pathcheck/internal/coach"
	"github.com/abhisek/pathcheck/internal/config"
	"github.com/abhisek/pathcheck/internal/llm"
	"github.com/abhisek/pathcheck/internal/logging"
)

// runApp loads config, sets up file logging and the optional coach, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, "File logging unavailable:", err)
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("pathcheck starting", zap.String("version", version))

	skip, _ := cmd.Flags().GetBool("no-splash")
	opts := app.Options{
		Logger:     logger,
		Assessment: assessment.Options{CrossSectionBack: cfg.Assessment.CrossSectionBack},
		ReportDir:  cfg.Report.Directory,
		SkipSplash: skip,
	}
	if svc, err := buildCoach(cmd.Context(), cfg, logger); err != nil {
		fmt.Fprintln(os.Stderr, "Coach unavailable:", err)
	} else if svc != nil {
		opts.Narrator = svc
	}

	return app.Run(opts)
}

// buildCoach returns nil without error when the coach is disabled or no
// provider is configured.
func buildCoach(ctx context.Context, cfg config.Config, logger *zap.Logger) (*coach.Service, error) {
	llmCfg, ok := cfg.CoachLLM()
	if !ok {
		logger.Info("coach disabled", zap.Bool("enabled", cfg.Coach.Enabled))
		return nil, nil
	}

	provider, err := llm.NewProvider(ctx, llmCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}
	logger.Info("coach enabled",
		zap.String("provider", llmCfg.Provider),
		zap.String("model", provider.ModelID()))

	return coach.NewService(provider, coach.Config{
		MaxTokens:   cfg.Coach.MaxTokens,
		Temperature: cfg.Coach.Temperature,
		Timeout:     cfg.Coach.Timeout,
	}, logger), nil
}
