package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Rorical/GitLingo/internal/app"
	"github.com/Rorical/GitLingo/internal/config"
	"github.com/Rorical/GitLingo/internal/logging"
)

var (
	endpointFlag string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "gitlingo",
	Short: "Translate plain English to Git commands",
	Long:  `GitLingo sends a plain English request to a translation service and shows the suggested Git command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runApp(cfg)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpointFlag, "endpoint", "", "translation endpoint (overrides the active profile)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(profileCmd)
}

// loadConfig reads the config file and applies command-line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if endpointFlag != "" {
		cfg.SetEndpoint(endpointFlag)
	}
	if logLevelFlag != "" {
		cfg.SetLogLevel(logLevelFlag)
	}
	return cfg, nil
}

// runApp starts the terminal form. It logs to a file since the form owns
// the terminal.
func runApp(cfg *config.Config) error {
	logPath, err := config.LogPath()
	if err != nil {
		return fmt.Errorf("failed to resolve log path: %w", err)
	}
	logFile, err := logging.OpenFile(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	logger := logging.New(logging.Config{
		Level:  cfg.GetLogLevel(),
		Output: logFile,
	})

	application := app.NewApplication(cfg, logger)
	defer application.Stop()

	if err := application.Start(); err != nil {
		return fmt.Errorf("application error: %w", err)
	}
	return nil
}

// stderrLogger is used by the non-interactive commands
func stderrLogger(cfg *config.Config) zerolog.Logger {
	c := logging.DefaultConfig()
	c.Level = cfg.GetLogLevel()
	return logging.New(c)
}
