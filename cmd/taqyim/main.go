package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"taqyim/internal/app"
	"taqyim/internal/config"
	"taqyim/internal/logging"
	"taqyim/internal/store"
)

var (
	// Global flags
	configPath string
	dataPath   string
	verbose    bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "taqyim",
	Short: "taqyim - local HR evaluation tracker",
	Long: `taqyim records employees and their periodic (daily/monthly) performance
evaluations and renders dashboards and monthly reports from them.

All state lives on this machine in a single data file; there is no server
and no account. Run without arguments to start the interactive interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// loadConfig loads the YAML config and applies the --data override.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if dataPath != "" {
		cfg.DataPath = dataPath
	}
	return cfg, nil
}

// openTracker opens the store and constructs the coordinator over it.
// Callers close the returned store when done.
func openTracker() (*app.Tracker, *store.LocalStore, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	s, err := store.NewLocalStore(cfg.DataPath, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open data file: %w", err)
	}

	return app.New(s, logger), s, cfg, nil
}

// today returns the current ISO date the way the dashboard defines "today".
func today() string {
	return time.Now().Format("2006-01-02")
}

// currentMonth returns the current YYYY-MM month key.
func currentMonth() string {
	return time.Now().Format("2006-01")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.taqyim/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "data file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(addEmployeeCmd)
	rootCmd.AddCommand(addEvaluationCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
