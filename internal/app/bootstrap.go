package app

import (
	"context"
	"fmt"
	"io"

	"animalsctl/internal/config"
	"animalsctl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs animalsctl
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads configuration, applies flag overrides and builds the
// API client. CLI logging goes to logOutput until a mode replaces it.
func NewApplication(cfg *Config, logOutput io.Writer) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	logging.InitForCLI(appLogLevel, logOutput)

	var settings config.Config
	var err error

	if cfg.ConfigPath != "" {
		settings, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		settings, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	cfg.applyOverrides(&settings)
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.Settings = &settings

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Services returns the initialized services.
func (a *Application) Services() *Services {
	return a.services
}

// Settings returns the effective configuration after overrides.
func (a *Application) Settings() config.Config {
	return *a.config.Settings
}

// Run starts the interactive terminal UI and blocks until it exits
func (a *Application) Run(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services)
}

// RunMockAPI serves the fixture dataset until ctx is done or the process is interrupted
func (a *Application) RunMockAPI(ctx context.Context) error {
	return runMockAPIMode(ctx, a.config.Settings.MockAPI)
}

// RunMCP serves the Animals tools over the configured MCP transport
func (a *Application) RunMCP(ctx context.Context) error {
	return runMCPMode(ctx, a.config.Settings.MCP, a.services, a.config.Version)
}
