package app

import (
	"time"

	"animalsctl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// ConfigPath replaces the layered user/project files when set
	ConfigPath string

	// Debug settings
	Debug bool

	// Version is reported to MCP clients
	Version string

	// Flag overrides; zero values keep the file settings
	BaseURL  string
	Timeout  time.Duration
	StartTab string
	MockAPI  config.MockAPIConfig
	MCP      config.MCPConfig

	// Settings is populated by NewApplication
	Settings *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(configPath string, debug bool) *Config {
	return &Config{
		ConfigPath: configPath,
		Debug:      debug,
	}
}

// applyOverrides copies the non-zero flag values over the loaded settings.
func (c *Config) applyOverrides(settings *config.Config) {
	if c.BaseURL != "" {
		settings.API.BaseURL = c.BaseURL
	}
	if c.Timeout != 0 {
		settings.API.Timeout = c.Timeout
	}
	if c.StartTab != "" {
		settings.UI.StartTab = c.StartTab
	}

	if c.MockAPI.Host != "" {
		settings.MockAPI.Host = c.MockAPI.Host
	}
	if c.MockAPI.Port != 0 {
		settings.MockAPI.Port = c.MockAPI.Port
	}
	if c.MockAPI.Fixtures != "" {
		settings.MockAPI.Fixtures = c.MockAPI.Fixtures
	}
	if c.MockAPI.DBPath != "" {
		settings.MockAPI.DBPath = c.MockAPI.DBPath
	}

	if c.MCP.Transport != "" {
		settings.MCP.Transport = c.MCP.Transport
	}
	if c.MCP.Host != "" {
		settings.MCP.Host = c.MCP.Host
	}
	if c.MCP.Port != 0 {
		settings.MCP.Port = c.MCP.Port
	}
}
