package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kozaktomas/people-page/internal/config"
	"github.com/kozaktomas/people-page/internal/logger"
)

var captureDir string

var rootCmd = &cobra.Command{
	Use:   "people-page",
	Short: "A web page listing people with their parents",
	Long: `People Page fetches a list of people from a remote endpoint, links every
person to their mother and father by name and renders a filterable, sortable
table of them.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&captureDir, "capture", "", "Directory to save API responses for testing")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}

// loadConfig reads the configuration and builds the logger for a command.
func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if captureDir != "" {
		cfg.PeopleAPI.CaptureDir = captureDir
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
