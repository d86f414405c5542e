// Package cli implements the cubetrainer command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetrainer/internal/config"
	"github.com/SeamusWaldron/cubetrainer/internal/logging"
	"github.com/SeamusWaldron/cubetrainer/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	configPath string
	verbose    bool
	logFormat  string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubetrainer",
	Short: "Smart cube algorithm trainer",
	Long: `cubetrainer drills algorithm sets (PLL, OLL, F2L or your own) on a
Bluetooth smart cube. Each case is presented by its setup; the trainer
watches your turns, recognises when the case is solved and records
recognition and execution times.

Without a cube, run "cubetrainer train --sim" and type moves instead.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !logging.ValidFormat(logFormat) {
			return fmt.Errorf("unknown log format %q (want text or json)", logFormat)
		}
		logging.Init(logging.Level(verbose), logFormat)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubetrainer/cubetrainer.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file path (default: ~/.cubetrainer/settings.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logging.FormatText, "Log format (text, json)")
}

// openDB opens the database named by --db or the default location.
func openDB() (*storage.DB, error) {
	path := dbPath
	if path == "" {
		p, err := storage.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return storage.Open(path)
}

// settingsPath returns the settings file named by --config or the default.
func settingsPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

func loadSettings() (config.Settings, string, error) {
	path, err := settingsPath()
	if err != nil {
		return config.Settings{}, "", err
	}
	s, err := config.Load(path)
	if err != nil {
		return config.Settings{}, "", err
	}
	return s, path, nil
}
