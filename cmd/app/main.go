package main

import (
	"log/slog"
	"os"

	"bakery/cmd"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "bakery",
	Short:         "Bakery storefront API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// bootstrap loads configuration and installs the process-wide logger.
func bootstrap() (cmd.Config, *slog.Logger, error) {
	cfg, err := cmd.LoadConfig(envFile)
	if err != nil {
		return cmd.Config{}, nil, err
	}

	logger := cmd.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)
	return cfg, logger, nil
}
