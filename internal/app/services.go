package app

import (
	"fmt"

	"animalsctl/internal/api"
)

// Services holds the initialized API client shared by every mode
type Services struct {
	Client *api.Client
	API    api.AnimalsAPI
}

// InitializeServices builds the Animals client from the loaded settings
func InitializeServices(cfg *Config) (*Services, error) {
	settings := cfg.Settings.API
	client, err := api.NewClient(api.ClientConfig{
		BaseURL:           settings.BaseURL,
		Timeout:           settings.Timeout,
		UserAgent:         settings.UserAgent,
		RequestsPerSecond: settings.RequestsPerSecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	return &Services{
		Client: client,
		API:    client,
	}, nil
}
