package screen

import (
	"context"

	"animalsctl/internal/api"
	"animalsctl/pkg/logging"
)

// AnimalList loads every animal.
type AnimalList struct {
	*lifecycle[[]api.Animal]
	client   api.AnimalsAPI
	onSelect SelectFunc
}

// NewAnimalList returns a controller in the Loading phase. onSelect may be nil.
func NewAnimalList(client api.AnimalsAPI, onSelect SelectFunc) *AnimalList {
	return &AnimalList{
		lifecycle: newLifecycle(AnimalListScreen, "Error loading animals", func(a []api.Animal) bool { return len(a) == 0 }),
		client:    client,
		onSelect:  onSelect,
	}
}

func (c *AnimalList) Activate(ctx context.Context) Fetch {
	return c.fetch(ctx, c.client.ListAnimals)
}

// Load activates the screen and waits for the result.
func (c *AnimalList) Load(ctx context.Context) State[[]api.Animal] {
	return load(c.lifecycle, c.Activate(ctx))
}

// Select forwards the chosen animal id. It does not change the state.
func (c *AnimalList) Select(id string) {
	logging.Debug(subsystem, "navigating to animal %s", id)
	if c.onSelect != nil {
		c.onSelect(id)
	}
}
