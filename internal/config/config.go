// Package config loads PathCheck settings from defaults, an optional
// pathcheck.yaml and PATHCHECK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/pathcheck/internal/llm"
)

// Config is the top-level configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Assessment AssessmentConfig `mapstructure:"assessment"`
	Coach      CoachConfig      `mapstructure:"coach"`
	Report     ReportConfig     `mapstructure:"report"`
	LLM        llm.Config       `mapstructure:"llm"`
}

// LoggingConfig controls the rotating log file.
type LoggingConfig struct {
	Directory  string `mapstructure:"directory"`
	Level      string `mapstructure:"level"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// AssessmentConfig tunes questionnaire navigation.
type AssessmentConfig struct {
	CrossSectionBack bool `mapstructure:"cross_section_back"`
}

// CoachConfig controls the optional narrative shown with results.
type CoachConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// ReportConfig controls where saved reports go.
type ReportConfig struct {
	Directory string `mapstructure:"directory"`
}

const envPrefix = "PATHCHECK"

// setDefaults sets the default values for the configuration.
func setDefaults(v *viper.Viper) {
	// Logging defaults
	v.SetDefault("logging.directory", DefaultLogDir())
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.max_size", 10)   // MB
	v.SetDefault("logging.max_backups", 3) // files
	v.SetDefault("logging.max_age", 7)     // days
	v.SetDefault("logging.compress", true)

	v.SetDefault("assessment.cross_section_back", false)

	v.SetDefault("coach.enabled", true)
	v.SetDefault("coach.max_tokens", 700)
	v.SetDefault("coach.temperature", 0.4)
	v.SetDefault("coach.timeout", 45*time.Second)

	v.SetDefault("report.directory", ".")

	// Every llm key needs a default so AutomaticEnv can override it.
	d := llm.DefaultConfig()
	v.SetDefault("llm.provider", d.Provider)
	v.SetDefault("llm.timeout", d.Timeout)
	for name, p := range map[string]struct{ key, model, url string }{
		"anthropic":  {d.Anthropic.APIKey, d.Anthropic.Model, d.Anthropic.BaseURL},
		"openai":     {d.OpenAI.APIKey, d.OpenAI.Model, d.OpenAI.BaseURL},
		"gemini":     {d.Gemini.APIKey, d.Gemini.Model, d.Gemini.BaseURL},
		"openrouter": {d.OpenRouter.APIKey, d.OpenRouter.Model, d.OpenRouter.BaseURL},
	} {
		v.SetDefault("llm."+name+".api_key", p.key)
		v.SetDefault("llm."+name+".model", p.model)
		v.SetDefault("llm."+name+".base_url", p.url)
	}
	v.SetDefault("llm.retry.max_attempts", d.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.Retry.Multiplier)
}

// Load reads the configuration. When path is empty, pathcheck.yaml is
// looked up in the working directory and then in the user config
// directory; a missing file is not an error. An explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		if dir, err := userConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("pathcheck")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix) // e.g. PATHCHECK_LOGGING_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// CoachLLM returns the LLM configuration for the coach, resolving the
// provider from standard API key variables when none is configured. It
// reports false when the coach is disabled or no provider is available.
func (c Config) CoachLLM() (llm.Config, bool) {
	if !c.Coach.Enabled {
		return llm.Config{}, false
	}
	return c.LLM.Resolve()
}

// DefaultLogDir returns $XDG_STATE_HOME/pathcheck/logs, falling back to
// ~/.local/state/pathcheck/logs.
func DefaultLogDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "pathcheck", "logs")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "pathcheck", "logs")
	}
	return filepath.Join(home, ".local", "state", "pathcheck", "logs")
}

// userConfigDir returns $XDG_CONFIG_HOME/pathcheck or the platform default.
func userConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "pathcheck"), nil
}
