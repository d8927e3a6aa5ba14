package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"animalsctl/internal/config"
	"animalsctl/internal/mcpserver"
	"animalsctl/internal/mockapi"
	"animalsctl/internal/tui/controller"
	"animalsctl/internal/tui/design"
	"animalsctl/internal/tui/model"
	"animalsctl/pkg/logging"
)

const shutdownTimeout = 5 * time.Second

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, cfg *Config, services *Services) error {
	logging.Debug("CLI", "Starting TUI mode against %s", services.Client.BaseURL())

	design.Initialize(cfg.Settings.UI.ColorMode)

	// Switch logging to channel-based system for TUI integration
	logLevel := logging.LevelInfo
	if cfg.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(model.TUIConfig{
		API:       services.API,
		StartTab:  cfg.Settings.UI.StartTab,
		DebugMode: cfg.Debug,
		ColorMode: cfg.Settings.UI.ColorMode,
	}, logChan)
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	// Leaving ctx early stops the program the same way ctrl+c does.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Debug("TUI-Lifecycle", "TUI exited.")

	return nil
}

// runMockAPIMode serves fixtures until ctx is done or a shutdown signal arrives
func runMockAPIMode(ctx context.Context, settings config.MockAPIConfig) error {
	srv, err := mockapi.NewServer(mockapi.ServerConfig{
		Host:         settings.Host,
		Port:         settings.Port,
		FixturesPath: settings.Fixtures,
		DBPath:       settings.DBPath,
	})
	if err != nil {
		return fmt.Errorf("failed to prepare mock API: %w", err)
	}

	ctx, stop := withShutdownSignals(ctx)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		return err
	}
	logging.Info("MockAPI", "Point animalsctl at it with --base-url %s. Press Ctrl+C to stop.", srv.BaseURL())

	<-ctx.Done()

	logging.Info("MockAPI", "Shutting down mock API")
	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(stopCtx)
}

// runMCPMode exposes the Animals tools on the configured transport
func runMCPMode(ctx context.Context, settings config.MCPConfig, services *Services, version string) error {
	srv := mcpserver.New(services.API, version)

	ctx, stop := withShutdownSignals(ctx)
	defer stop()

	switch settings.Transport {
	case config.MCPTransportSSE:
		return srv.ServeSSE(ctx, settings.Host, settings.Port)
	case config.MCPTransportStdio:
		logging.Debug("MCP", "Serving MCP tools over stdio")
		return srv.ServeStdio(ctx, os.Stdin, os.Stdout)
	default:
		return fmt.Errorf("unsupported MCP transport %q", settings.Transport)
	}
}

func withShutdownSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
