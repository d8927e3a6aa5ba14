package api

import "context"

// AnimalsAPI is the set of read operations offered by the Animals service.
// Each call issues exactly one request; implementations must not retry,
// cache or deduplicate.
type AnimalsAPI interface {
	// ListAnimals returns every animal.
	ListAnimals(ctx context.Context) ([]Animal, error)

	// ListEnvironments returns every environment.
	ListEnvironments(ctx context.Context) ([]Environment, error)

	// GetAnimal returns the animal with the given id.
	GetAnimal(ctx context.Context, id string) (Animal, error)

	// GetEnvironment returns the environment with the given id.
	GetEnvironment(ctx context.Context, id string) (Environment, error)

	// ListAnimalsByEnvironment returns the animals living in an environment.
	ListAnimalsByEnvironment(ctx context.Context, environmentID string) ([]Animal, error)
}

var _ AnimalsAPI = (*Client)(nil)
