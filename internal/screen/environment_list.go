package screen

import (
	"context"

	"animalsctl/internal/api"
	"animalsctl/pkg/logging"
)

// EnvironmentList loads every environment.
type EnvironmentList struct {
	*lifecycle[[]api.Environment]
	client   api.AnimalsAPI
	onSelect SelectFunc
}

func NewEnvironmentList(client api.AnimalsAPI, onSelect SelectFunc) *EnvironmentList {
	return &EnvironmentList{
		lifecycle: newLifecycle(EnvironmentListScreen, "Error loading environments", func(e []api.Environment) bool { return len(e) == 0 }),
		client:    client,
		onSelect:  onSelect,
	}
}

func (c *EnvironmentList) Activate(ctx context.Context) Fetch {
	return c.fetch(ctx, c.client.ListEnvironments)
}

func (c *EnvironmentList) Load(ctx context.Context) State[[]api.Environment] {
	return load(c.lifecycle, c.Activate(ctx))
}

// Select forwards the chosen environment id.
func (c *EnvironmentList) Select(id string) {
	logging.Debug(subsystem, "navigating to environment %s", id)
	if c.onSelect != nil {
		c.onSelect(id)
	}
}
