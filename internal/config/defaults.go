package config

import (
	"animalsctl/internal/api"
)

// GetDefaultConfig returns the configuration used when no file overrides it.
// It talks to the public Animals service.
func GetDefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:   api.DefaultBaseURL,
			Timeout:   api.DefaultTimeout,
			UserAgent: "animalsctl",
		},
		UI: UIConfig{
			StartTab:  TabAnimals,
			ColorMode: ColorModeAuto,
		},
		MockAPI: MockAPIConfig{
			Host: "localhost",
			Port: 8090,
		},
		MCP: MCPConfig{
			Transport: MCPTransportStdio,
			Host:      "localhost",
			Port:      8091,
		},
	}
}
