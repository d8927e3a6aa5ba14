package config

import (
	"time"
)

// Config is the top-level configuration structure for animalsctl.
type Config struct {
	API     APIConfig     `yaml:"api"`
	UI      UIConfig      `yaml:"ui"`
	MockAPI MockAPIConfig `yaml:"mockAPI"`
	MCP     MCPConfig     `yaml:"mcp"`
}

// APIConfig points the client at an Animals service.
type APIConfig struct {
	BaseURL           string        `yaml:"baseURL,omitempty"`
	Timeout           time.Duration `yaml:"timeout,omitempty"`           // Per request, including the body read
	UserAgent         string        `yaml:"userAgent,omitempty"`         // Sent with every request
	RequestsPerSecond float64       `yaml:"requestsPerSecond,omitempty"` // 0 disables client-side pacing
}

// UIConfig holds terminal UI preferences.
type UIConfig struct {
	StartTab  string `yaml:"startTab,omitempty"`  // "animals" or "environments"
	ColorMode string `yaml:"colorMode,omitempty"` // "auto", "dark" or "light"
}

// MockAPIConfig configures the `mock-api` command.
type MockAPIConfig struct {
	Host     string `yaml:"host,omitempty"`
	Port     int    `yaml:"port,omitempty"`
	Fixtures string `yaml:"fixtures,omitempty"` // YAML fixture file; empty uses the built-in dataset
	DBPath   string `yaml:"dbPath,omitempty"`   // Bolt file; empty keeps the dataset in memory
}

// MCPConfig configures the `mcp` command.
type MCPConfig struct {
	Transport string `yaml:"transport,omitempty"` // "stdio" or "sse"
	Host      string `yaml:"host,omitempty"`      // Bind host for sse
	Port      int    `yaml:"port,omitempty"`      // Bind port for sse
}

const (
	// TabAnimals opens the TUI on the animal list.
	TabAnimals = "animals"
	// TabEnvironments opens the TUI on the environment list.
	TabEnvironments = "environments"
)

const (
	// MCPTransportSSE is the Server-Sent Events transport.
	MCPTransportSSE = "sse"
	// MCPTransportStdio is the standard I/O transport.
	MCPTransportStdio = "stdio"
)

const (
	ColorModeAuto  = "auto"
	ColorModeDark  = "dark"
	ColorModeLight = "light"
)
