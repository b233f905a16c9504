package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/clock25/internal/config"
	"github.com/abhisek/clock25/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "clock25",
	Short: "25 + 5 clock for the terminal",
	Long:  "clock25: a Pomodoro-style session/break countdown with adjustable lengths and an alarm.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addConfigFlags(rootCmd)

	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// addConfigFlags registers the flags that override configuration.
func addConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("config", "", "Path to config file (overrides CLOCK25_CONFIG env var)")
	flags.Int("break", 0, "Initial break length in minutes (1-60)")
	flags.Int("session", 0, "Initial session length in minutes (1-60)")
	flags.String("alarm", "", "Alarm mode: speaker, bell or off")
	flags.String("alarm-file", "", "WAV file played by the speaker alarm")
	flags.String("log-file", "", "Path to the log file")
	flags.Bool("trace", false, "Write JSON trace entries to the log file")
}

// resolveConfigPath returns the config path using --config flag (highest
// priority), then CLOCK25_CONFIG env var, then the default XDG path.
func resolveConfigPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p, nil
	}
	return config.DefaultPath()
}

// loadConfig layers the config file, the environment and changed flags over
// the defaults and validates the result.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := resolveConfigPath(cmd)
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return cfg, err
	}
	cfg = config.ApplyEnv(cfg, os.Environ())
	cfg = applyFlags(cmd, cfg)

	if err := config.Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyFlags overlays only the flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("break") {
		cfg.Timer.BreakLength, _ = flags.GetInt("break")
	}
	if flags.Changed("session") {
		cfg.Timer.SessionLength, _ = flags.GetInt("session")
	}
	if flags.Changed("alarm") {
		cfg.Alarm.Mode, _ = flags.GetString("alarm")
	}
	if flags.Changed("alarm-file") {
		cfg.Alarm.File, _ = flags.GetString("alarm-file")
	}
	if flags.Changed("log-file") {
		cfg.Logging.FilePath, _ = flags.GetString("log-file")
	}
	if flags.Changed("trace") {
		cfg.Logging.Trace, _ = flags.GetBool("trace")
	}
	return cfg
}

func setupLogging(cfg config.Config) {
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
}
