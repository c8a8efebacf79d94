package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/axellelanca/urlmanager/internal/config"
	"github.com/axellelanca/urlmanager/internal/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Cfg is the global variable that will contain the loaded configuration
// It will be accessible to all Cobra commands throughout the application
var Cfg *config.Config

// Log is the application logger, built from Cfg once the configuration is loaded
var Log logger.Logger = logger.Nop()

var cfgFile string

// RootCmd is the base command for the CLI application
// All other commands (add, list, delete, insights, export, import, migrate) are added as subcommands
var RootCmd = &cobra.Command{
	Use:   "urlmanager",
	Short: "A personal bookmark manager",
	Long: `A personal bookmark manager that records URLs with a description and a category,
shows per-category insights, and exports the whole list to CSV, JSON, XML or YAML.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// UserError is a failure whose message is meant for the user as is.
// Commands return it instead of exiting so their deferred cleanup still runs.
type UserError struct {
	Msg string
}

func (e *UserError) Error() string { return e.Msg }

// Failf builds a UserError from a format string.
func Failf(format string, args ...any) error {
	return &UserError{Msg: fmt.Sprintf(format, args...)}
}

// Execute is the main entry point for the Cobra application
// It is called from 'main.go' and handles command execution and error handling
func Execute() {
	err := RootCmd.Execute()
	_ = Log.Sync()
	if err != nil {
		var userErr *UserError
		if errors.As(err, &userErr) {
			fmt.Fprintln(os.Stderr, color.RedString(userErr.Msg))
		} else {
			fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	// Configuration is loaded before any command executes
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./configs/config.yaml)")

	// Sub-commands register themselves via their own init() functions.
}

// initConfig loads the application configuration and builds the logger.
// A broken configuration is fatal: every command needs the database path.
func initConfig() {
	var err error

	Cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	Log, err = logger.New(Cfg.Log.Level, Cfg.Log.Pretty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}

	Log.Debug("configuration loaded",
		logger.String("database", Cfg.Database.Name),
		logger.Int("schema_version", Cfg.Database.SchemaVersion),
		logger.String("export_dir", Cfg.Export.Dir))
}
