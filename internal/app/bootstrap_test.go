package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"animalsctl/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("/tmp/animalsctl.yaml", true)
	assert.Equal(t, "/tmp/animalsctl.yaml", cfg.ConfigPath)
	assert.True(t, cfg.Debug)
	assert.Nil(t, cfg.Settings, "Settings should be nil before loading")
}

func TestNewApplication_FromPath(t *testing.T) {
	path := writeConfigFile(t, `
api:
  baseURL: http://localhost:9999/api
  timeout: 3s
ui:
  startTab: environments
`)

	application, err := NewApplication(NewConfig(path, false), io.Discard)
	require.NoError(t, err)

	settings := application.Settings()
	assert.Equal(t, "http://localhost:9999/api", settings.API.BaseURL)
	assert.Equal(t, 3*time.Second, settings.API.Timeout)
	assert.Equal(t, config.TabEnvironments, settings.UI.StartTab)
	assert.Equal(t, config.MCPTransportStdio, settings.MCP.Transport, "defaults fill unset keys")

	services := application.Services()
	require.NotNil(t, services)
	assert.Equal(t, "http://localhost:9999/api/", services.Client.BaseURL())
	assert.Same(t, services.Client, services.API)
}

func TestNewApplication_FlagOverrides(t *testing.T) {
	path := writeConfigFile(t, "api:\n  baseURL: http://localhost:9999/api/\n")

	cfg := NewConfig(path, true)
	cfg.BaseURL = "http://127.0.0.1:8090/api/"
	cfg.Timeout = time.Second
	cfg.StartTab = config.TabEnvironments
	cfg.MCP = config.MCPConfig{Transport: config.MCPTransportSSE, Port: 9100}
	cfg.MockAPI = config.MockAPIConfig{Port: 9200, Fixtures: "fixtures.yaml"}

	application, err := NewApplication(cfg, io.Discard)
	require.NoError(t, err)

	settings := application.Settings()
	assert.Equal(t, "http://127.0.0.1:8090/api/", settings.API.BaseURL)
	assert.Equal(t, time.Second, settings.API.Timeout)
	assert.Equal(t, config.TabEnvironments, settings.UI.StartTab)
	assert.Equal(t, config.MCPTransportSSE, settings.MCP.Transport)
	assert.Equal(t, 9100, settings.MCP.Port)
	assert.Equal(t, "localhost", settings.MCP.Host)
	assert.Equal(t, 9200, settings.MockAPI.Port)
	assert.Equal(t, "fixtures.yaml", settings.MockAPI.Fixtures)
}

func TestNewApplication_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func(t *testing.T) *Config
		wantErr string
	}{
		{
			name: "missing file",
			cfg: func(t *testing.T) *Config {
				return NewConfig(filepath.Join(t.TempDir(), "absent.yaml"), false)
			},
			wantErr: "failed to load configuration from path",
		},
		{
			name: "malformed file",
			cfg: func(t *testing.T) *Config {
				return NewConfig(writeConfigFile(t, "api: [not, a, map]"), false)
			},
			wantErr: "failed to load configuration from path",
		},
		{
			name: "invalid base URL override",
			cfg: func(t *testing.T) *Config {
				cfg := NewConfig(writeConfigFile(t, ""), false)
				cfg.BaseURL = "ftp://example.com"
				return cfg
			},
			wantErr: "invalid configuration",
		},
		{
			name: "unknown start tab",
			cfg: func(t *testing.T) *Config {
				cfg := NewConfig(writeConfigFile(t, ""), false)
				cfg.StartTab = "zoo"
				return cfg
			},
			wantErr: "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewApplication(tt.cfg(t), io.Discard)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewApplication_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewApplication(NewConfig(writeConfigFile(t, ""), true), &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Loaded configuration from custom path")
}

func TestRunMockAPIMode_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runMockAPIMode(ctx, config.MockAPIConfig{Host: "127.0.0.1", Port: 0})
	assert.NoError(t, err)
}

func TestRunMockAPIMode_BadFixtures(t *testing.T) {
	err := runMockAPIMode(context.Background(), config.MockAPIConfig{
		Host:     "127.0.0.1",
		Fixtures: filepath.Join(t.TempDir(), "absent.yaml"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to prepare mock API")
}

func TestRunMCPMode_UnsupportedTransport(t *testing.T) {
	application, err := NewApplication(NewConfig(writeConfigFile(t, ""), false), io.Discard)
	require.NoError(t, err)

	err = runMCPMode(context.Background(), config.MCPConfig{Transport: "carrier-pigeon"}, application.Services(), "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported MCP transport")
}

func TestRunMCPMode_SSEStopsWithContext(t *testing.T) {
	application, err := NewApplication(NewConfig(writeConfigFile(t, ""), false), io.Discard)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runMCPMode(ctx, config.MCPConfig{Transport: config.MCPTransportSSE, Host: "127.0.0.1", Port: 0}, application.Services(), "test")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("MCP server did not stop")
	}
}
