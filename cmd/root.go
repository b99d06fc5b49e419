package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/pathcheck/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "pathcheck",
	Short: "Financial Analyst readiness and fit assessment",
	Long: "PathCheck walks you through a 21-question assessment of personality fit, " +
		"technical aptitude and the WISCAR framework, then recommends whether a " +
		"career in financial analysis suits you.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a pathcheck.yaml config file")
	rootCmd.Flags().Bool("no-splash", false, "Skip the opening animation")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadConfig reads configuration from --config, or from the default
// locations when the flag is empty.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
