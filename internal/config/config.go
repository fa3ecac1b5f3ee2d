// Package config provides configuration types and defaults for zoo.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/zoo/internal/log"
	"github.com/zjrosen/zoo/internal/tracing"
	"github.com/zjrosen/zoo/internal/zoo/report"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultConfigPath is where a missing config is created.
const DefaultConfigPath = ".zoo/config.yaml"

// Config holds all configuration options for zoo.
type Config struct {
	// Roster is a YAML file of animals and employees loaded before flags.
	Roster   string          `mapstructure:"roster"`
	DebugLog string          `mapstructure:"debug_log"`
	Output   OutputConfig    `mapstructure:"output"`
	Schedule ScheduleConfig  `mapstructure:"schedule"`
	Tracing  tracing.Config  `mapstructure:"tracing"`
	Flags    map[string]bool `mapstructure:"flags"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format string `mapstructure:"format"` // "text" (default) or "json"
	Styled bool   `mapstructure:"styled"` // colour headers when the terminal supports it
}

// PlanConfig overrides one schedule's first slot and per-animal step.
type PlanConfig struct {
	Start string        `mapstructure:"start"` // "HH:MM"
	Step  time.Duration `mapstructure:"step"`  // e.g. "30m"
}

// ScheduleConfig holds the three care schedules.
type ScheduleConfig struct {
	Feeding  PlanConfig `mapstructure:"feeding"`
	Medical  PlanConfig `mapstructure:"medical"`
	Cleaning PlanConfig `mapstructure:"cleaning"`
}

// Plans converts the schedule settings to report plans. Empty fields keep
// the built-in values.
func (s ScheduleConfig) Plans() (report.Plans, error) {
	plans := report.DefaultPlans()
	var err error
	if plans.Feeding, err = s.Feeding.apply("feeding", plans.Feeding); err != nil {
		return report.Plans{}, err
	}
	if plans.Medical, err = s.Medical.apply("medical", plans.Medical); err != nil {
		return report.Plans{}, err
	}
	if plans.Cleaning, err = s.Cleaning.apply("cleaning", plans.Cleaning); err != nil {
		return report.Plans{}, err
	}
	return plans, nil
}

func (p PlanConfig) apply(name string, base report.Plan) (report.Plan, error) {
	if p.Start != "" {
		start, err := report.ParseClock(p.Start)
		if err != nil {
			return report.Plan{}, fmt.Errorf("schedule.%s.start: %w", name, err)
		}
		base.Start = start
	}
	if p.Step < 0 {
		return report.Plan{}, fmt.Errorf("schedule.%s.step must not be negative, got %s", name, p.Step)
	}
	if p.Step > 0 {
		if p.Step%time.Minute != 0 {
			return report.Plan{}, fmt.Errorf("schedule.%s.step must be whole minutes, got %s", name, p.Step)
		}
		base.Step = p.Step
	}
	return base, nil
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		DebugLog: "zoo-debug.log",
		Output: OutputConfig{
			Format: FormatText,
			Styled: true,
		},
		Schedule: ScheduleConfig{
			Feeding:  PlanConfig{Start: report.FeedingStart.String(), Step: report.FeedingStep},
			Medical:  PlanConfig{Start: report.MedicalStart.String(), Step: report.MedicalStep},
			Cleaning: PlanConfig{Start: report.CleaningStart.String(), Step: report.CleaningStep},
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// DefaultTracesFilePath returns the trace file used when tracing.file_path is
// unset: ~/.config/zoo/traces/traces.jsonl.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".zoo", "traces", "traces.jsonl")
	}
	return filepath.Join(home, ".config", "zoo", "traces", "traces.jsonl")
}

// ValidateOutput checks the output section.
func ValidateOutput(out OutputConfig) error {
	switch out.Format {
	case "", FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatJSON, out.Format)
	}
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if err := ValidateOutput(c.Output); err != nil {
		return err
	}
	if _, err := c.Schedule.Plans(); err != nil {
		return err
	}
	if err := c.Tracing.Validate(); err != nil {
		return err
	}
	return nil
}

// DefaultConfigTemplate returns the commented default config file.
func DefaultConfigTemplate() string {
	return `# Zoo Configuration

# Roster file loaded before --animal/--employee flags (optional)
# roster: roster.yaml

# Log file used with --debug or ZOO_DEBUG=1
debug_log: zoo-debug.log

output:
  format: text   # text or json
  styled: true   # colour headers when the terminal supports it

# Daily care schedules: first slot and per-animal step
schedule:
  feeding:
    start: "09:00"
    step: 30m
  medical:
    start: "11:00"
    step: 45m
  cleaning:
    start: "14:00"
    step: 30m

# OpenTelemetry tracing (disabled by default)
# tracing:
#   enabled: true
#   exporter: file       # none, file, stdout or otlp
#   file_path: ~/.config/zoo/traces/traces.jsonl
#   otlp_endpoint: localhost:4317
#   sample_rate: 1.0

# Feature flags
# flags:
#   strict-kinds: false      # stop at the first unknown kind
#   roster-autosave: false   # remember --roster as the roster key
#   styled-output: true
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
