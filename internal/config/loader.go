package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"animalsctl/pkg/logging"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/animalsctl"
	projectConfigDir = ".animalsctl"
	configFileName   = "config.yaml"
)

// LoadConfig layers the user and project configuration files over the
// defaults. Missing files are skipped; unreadable or malformed ones are errors.
func LoadConfig() (Config, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if config, err = overlayIfExists(config, userConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else if config, err = overlayIfExists(config, projectConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	return config, nil
}

// LoadConfigFromPath layers a single explicit file over the defaults. The
// user and project files are not consulted.
func LoadConfigFromPath(path string) (Config, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return mergeConfigs(GetDefaultConfig(), fileConfig), nil
}

func overlayIfExists(base Config, path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	logging.Debug("Config", "Applied config file %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' into 'base'. Zero values in overlay leave
// the base value in place.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.API.BaseURL != "" {
		merged.API.BaseURL = overlay.API.BaseURL
	}
	if overlay.API.Timeout != 0 {
		merged.API.Timeout = overlay.API.Timeout
	}
	if overlay.API.UserAgent != "" {
		merged.API.UserAgent = overlay.API.UserAgent
	}
	if overlay.API.RequestsPerSecond != 0 {
		merged.API.RequestsPerSecond = overlay.API.RequestsPerSecond
	}

	if overlay.UI.StartTab != "" {
		merged.UI.StartTab = overlay.UI.StartTab
	}
	if overlay.UI.ColorMode != "" {
		merged.UI.ColorMode = overlay.UI.ColorMode
	}

	if overlay.MockAPI.Host != "" {
		merged.MockAPI.Host = overlay.MockAPI.Host
	}
	if overlay.MockAPI.Port != 0 {
		merged.MockAPI.Port = overlay.MockAPI.Port
	}
	if overlay.MockAPI.Fixtures != "" {
		merged.MockAPI.Fixtures = overlay.MockAPI.Fixtures
	}
	if overlay.MockAPI.DBPath != "" {
		merged.MockAPI.DBPath = overlay.MockAPI.DBPath
	}

	if overlay.MCP.Transport != "" {
		merged.MCP.Transport = overlay.MCP.Transport
	}
	if overlay.MCP.Host != "" {
		merged.MCP.Host = overlay.MCP.Host
	}
	if overlay.MCP.Port != 0 {
		merged.MCP.Port = overlay.MCP.Port
	}

	return merged
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.baseURL %q: %w", c.API.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.baseURL %q: must be an absolute http or https URL", c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative, got %s", c.API.Timeout)
	}
	if c.API.RequestsPerSecond < 0 {
		return fmt.Errorf("api.requestsPerSecond must not be negative, got %g", c.API.RequestsPerSecond)
	}
	switch c.UI.StartTab {
	case TabAnimals, TabEnvironments:
	default:
		return fmt.Errorf("ui.startTab %q: expected %q or %q", c.UI.StartTab, TabAnimals, TabEnvironments)
	}
	switch c.UI.ColorMode {
	case ColorModeAuto, ColorModeDark, ColorModeLight:
	default:
		return fmt.Errorf("ui.colorMode %q: expected auto, dark or light", c.UI.ColorMode)
	}
	switch c.MCP.Transport {
	case MCPTransportStdio, MCPTransportSSE:
	default:
		return fmt.Errorf("mcp.transport %q: expected %q or %q", c.MCP.Transport, MCPTransportStdio, MCPTransportSSE)
	}
	if c.MockAPI.Port < 0 || c.MockAPI.Port > 65535 {
		return fmt.Errorf("mockAPI.port %d out of range", c.MockAPI.Port)
	}
	if c.MCP.Port < 0 || c.MCP.Port > 65535 {
		return fmt.Errorf("mcp.port %d out of range", c.MCP.Port)
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
