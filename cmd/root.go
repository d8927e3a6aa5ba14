package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"animalsctl/internal/app"

	"github.com/spf13/cobra"
)

// Flags shared by every subcommand.
var (
	configPath string
	baseURL    string
	timeout    time.Duration
	debug      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "animalsctl",
	Short: "Browse the Animals service from your terminal",
	Long: `animalsctl is a client for the Animals REST service. It lists animals and
the environments they live in, either interactively ('animalsctl browse') or
as tables, JSON or YAML for scripts ('animalsctl animals list').

It can also serve the same data to AI assistants as MCP tools
('animalsctl mcp') and run a local fixture server for offline
development ('animalsctl mock-api').`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. failed requests)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "animalsctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newApplication bootstraps configuration and the API client from the
// persistent flags. customize may set mode-specific overrides. Logs go to
// stderr so stdout stays clean for command output.
func newApplication(cmd *cobra.Command, customize func(cfg *app.Config)) (*app.Application, error) {
	cfg := app.NewConfig(configPath, debug)
	cfg.BaseURL = baseURL
	cfg.Timeout = timeout
	cfg.Version = rootCmd.Version
	if customize != nil {
		customize(cfg)
	}

	application, err := app.NewApplication(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.config/animalsctl/config.yaml layered with ./.animalsctl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Animals API base URL (overrides api.baseURL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Per-request timeout (overrides api.timeout)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
