package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/zoo/internal/config"
	"github.com/zjrosen/zoo/internal/flags"
	"github.com/zjrosen/zoo/internal/log"
	"github.com/zjrosen/zoo/internal/presentation"
	"github.com/zjrosen/zoo/internal/tracing"
)

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	logStderr bool
	cfg       config.Config
	cfgErr    error

	featureFlags *flags.Registry
	provider     *tracing.Provider
	logCleanup   func()
	stopMirror   func()
)

var rootCmd = &cobra.Command{
	Use:   "zoo",
	Short: "Manage a small zoo: animals, staff and daily care",
	Long: `Add animals and staff by kind name, then print population statistics,
today's care schedules and the staff responsibility report.

Kind names are case-insensitive: "wolf", "Wolf" and "WOLF" are the same kind.
Employees also accept the aliases "keeper" and "veterinarian".`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .zoo/config.yaml, then ~/.config/zoo/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write debug logs to debug_log (also enabled by ZOO_DEBUG=1)")
	rootCmd.PersistentFlags().BoolVar(&logStderr, "log-stderr", false,
		"mirror log entries to stderr (warnings and errors unless --debug is set)")
	rootCmd.PersistentFlags().StringP("format", "f", "",
		"output format: text or json (default from output.format)")

	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("debug_log", defaults.DebugLog)
	viper.SetDefault("output.format", defaults.Output.Format)
	viper.SetDefault("output.styled", defaults.Output.Styled)
	viper.SetDefault("schedule.feeding.start", defaults.Schedule.Feeding.Start)
	viper.SetDefault("schedule.feeding.step", defaults.Schedule.Feeding.Step)
	viper.SetDefault("schedule.medical.start", defaults.Schedule.Medical.Start)
	viper.SetDefault("schedule.medical.step", defaults.Schedule.Medical.Step)
	viper.SetDefault("schedule.cleaning.start", defaults.Schedule.Cleaning.Start)
	viper.SetDefault("schedule.cleaning.step", defaults.Schedule.Cleaning.Step)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)

	viper.SetEnvPrefix("zoo")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .zoo/config.yaml (current directory)
		// 2. ~/.config/zoo/config.yaml (user config)
		if _, err := os.Stat(config.DefaultConfigPath); err == nil {
			viper.SetConfigFile(config.DefaultConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "zoo"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	// A missing config is fine; `zoo config init` writes one.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}

	// Decode failures are reported by setup so the command exits non-zero.
	cfgErr = nil
	if err := viper.Unmarshal(&cfg); err != nil {
		cfgErr = fmt.Errorf("decoding config: %w", err)
	}
}

// setup starts logging and tracing and validates the loaded config.
func setup(cmd *cobra.Command, _ []string) error {
	if debugFlag || os.Getenv("ZOO_DEBUG") != "" {
		logPath := cfg.DebugLog
		if logPath == "" {
			logPath = config.Defaults().DebugLog
		}
		cleanup, err := log.Init(logPath)
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		logCleanup = cleanup
		log.Info(log.CatCLI, "zoo starting", "command", cmd.Name(), "version", version, "config", viper.ConfigFileUsed())
	}

	if logStderr {
		if logCleanup == nil {
			logCleanup = log.InitWriter(io.Discard)
			log.SetMinLevel(log.LevelWarn)
		}
		stopMirror = mirrorLog(cmd.ErrOrStderr())
	}

	if cfgErr != nil {
		return fmt.Errorf("invalid configuration: %w", cfgErr)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	featureFlags = flags.New(cfg.Flags)

	tracingCfg := cfg.Tracing
	if tracingCfg.Enabled && tracingCfg.Exporter == tracing.ExporterFile && tracingCfg.FilePath == "" {
		tracingCfg.FilePath = config.DefaultTracesFilePath()
	}
	p, err := tracing.NewProvider(tracingCfg)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	provider = p
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	var err error
	if provider != nil {
		err = provider.Shutdown(context.Background())
		provider = nil
	}
	if stopMirror != nil {
		stopMirror()
		stopMirror = nil
	}
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
	return err
}

// mirrorLog copies every log entry to w until the returned stop function is
// called. Stop waits for entries already published to be written.
func mirrorLog(w io.Writer) func() {
	ctx, cancel := context.WithCancel(context.Background())
	entries := log.Subscribe(ctx)
	if entries == nil {
		cancel()
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for entry := range entries {
			_, _ = io.WriteString(w, entry.Payload)
		}
	}()
	return func() {
		cancel()
		<-done
	}
}

// configPath is the file `config set` and roster autosave write to.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return config.DefaultConfigPath
}

// newFormatter builds the output formatter for w from the loaded config.
func newFormatter(w io.Writer) *presentation.Formatter {
	styled := cfg.Output.Styled && featureFlags.Enabled(flags.FlagStyledOutput)
	return presentation.NewFormatter(w,
		presentation.WithFormat(cfg.Output.Format),
		presentation.WithStyles(presentation.NewStyles(w, styled)),
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
