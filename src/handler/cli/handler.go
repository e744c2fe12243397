package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ratio-bot/src/config"
	"ratio-bot/src/util"
)

// Handler handles CLI commands
type Handler struct {
	cfg        *config.Config
	log        *util.Logger
	configPath string
	verbose    bool
	rootCmd    *cobra.Command
}

// New creates a new CLI handler
func New() *Handler {
	h := &Handler{}
	h.setupCommands()
	return h
}

func (h *Handler) setupCommands() {
	h.rootCmd = &cobra.Command{
		Use:   "ratio-bot",
		Short: "Comment-to-code ratio analyzer",
		Long:  "Calculates the ratio of comments to code lines in a project or file",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return h.loadConfig()
		},
		SilenceUsage: true,
	}

	// Global flags
	h.rootCmd.PersistentFlags().StringVarP(&h.configPath, "config", "c", "",
		"Path to configuration file")
	h.rootCmd.PersistentFlags().BoolVarP(&h.verbose, "verbose", "v", false,
		"Enable verbose output (debug logging)")

	// Add subcommands
	h.rootCmd.AddCommand(h.analyzeCmd())
	h.rootCmd.AddCommand(h.versionCmd())
}

func (h *Handler) loadConfig() error {
	loader := config.NewLoader()
	cfg, err := loader.Load(h.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if h.verbose {
		cfg.Logging.Level = "debug"
	}
	h.cfg = cfg

	// The logger is built here once and injected everywhere below.
	h.log = util.NewLogger(cfg.Logging)
	h.log.Debug("Configuration loaded successfully")
	h.log.Debug("Log level set to: %s", cfg.Logging.Level)

	return nil
}

// Execute runs the CLI
func (h *Handler) Execute() error {
	return h.rootCmd.Execute()
}

// Run is the main entry point
func Run() {
	handler := New()
	if err := handler.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
