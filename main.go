package main

import (
	"fmt"
	"os"

	"github.com/Real-Streeter/liberty-command/pkg/config"
	"github.com/Real-Streeter/liberty-command/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	envFile string
	v       = viper.New()
	rootCmd = &cobra.Command{
		Use:           "liberty",
		Short:         "Liberty command board: task board and RFP tracker API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Execute runs the root command.
func Execute() error {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFile, "config", "", "dotenv file to load (default .env)")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text or json)")
	if err := v.BindPFlag("LOG_LEVEL", flags.Lookup("log-level")); err != nil {
		return fmt.Errorf("bind log-level flag: %w", err)
	}
	if err := v.BindPFlag("LOG_FORMAT", flags.Lookup("log-format")); err != nil {
		return fmt.Errorf("bind log-format flag: %w", err)
	}

	v.AutomaticEnv()

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(moveCmd())
	return rootCmd.Execute()
}

// loadConfig reads dotenv, environment and flags, then sets up logging.
func loadConfig() (*config.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(v, files...)
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	return cfg, nil
}
