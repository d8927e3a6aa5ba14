package screen

import (
	"context"
	"strings"

	"animalsctl/internal/api"
)

// InvalidAnimalIDMessage is shown when the animal detail has no id to load.
const InvalidAnimalIDMessage = "Invalid Animal ID"

// AnimalDetail loads one animal by id. A loaded animal is never reported as
// Empty; the view marks a missing gallery or missing facts individually.
type AnimalDetail struct {
	*lifecycle[api.Animal]
	client api.AnimalsAPI
	id     string
}

func NewAnimalDetail(client api.AnimalsAPI, id string) *AnimalDetail {
	return &AnimalDetail{
		lifecycle: newLifecycle[api.Animal](AnimalDetailScreen, "Error loading animal", nil),
		client:    client,
		id:        id,
	}
}

// SetID changes the animal to load on the next activation. Call it from the
// same goroutine as Activate.
func (c *AnimalDetail) SetID(id string) { c.id = id }

// ID returns the animal id the screen was given.
func (c *AnimalDetail) ID() string { return c.id }

// Activate returns nil when the id is blank; the state is then
// PhaseInvalidReference and no request is made.
func (c *AnimalDetail) Activate(ctx context.Context) Fetch {
	id := c.id
	if strings.TrimSpace(id) == "" {
		c.invalidate(InvalidAnimalIDMessage)
		return nil
	}
	return c.fetch(ctx, func(ctx context.Context) (api.Animal, error) {
		return c.client.GetAnimal(ctx, id)
	})
}

func (c *AnimalDetail) Load(ctx context.Context) State[api.Animal] {
	return load(c.lifecycle, c.Activate(ctx))
}
