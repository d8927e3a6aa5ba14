package mockapi

import (
	"context"
	"errors"

	"animalsctl/internal/api"
)

// ErrNotFound is returned when a requested animal or environment does not exist.
var ErrNotFound = errors.New("not found")

// Store is the read side the mock server needs.
type Store interface {
	Animals(ctx context.Context) ([]api.Animal, error)
	Animal(ctx context.Context, id string) (api.Animal, error)
	Environments(ctx context.Context) ([]api.Environment, error)
	Environment(ctx context.Context, id string) (api.Environment, error)
	AnimalsByEnvironment(ctx context.Context, environmentID string) ([]api.Animal, error)
}

// MemoryStore serves a Dataset from memory.
type MemoryStore struct {
	animals      []api.Animal
	animalIndex  map[string]int
	environments []EnvironmentRecord
	envIndex     map[string]int
}

// NewMemoryStore indexes ds. The dataset is copied.
func NewMemoryStore(ds Dataset) (*MemoryStore, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	s := &MemoryStore{
		animalIndex: make(map[string]int, len(ds.Animals)),
		envIndex:    make(map[string]int, len(ds.Environments)),
	}
	for i, a := range ds.Animals {
		s.animals = append(s.animals, a.Clone())
		s.animalIndex[a.ID] = i
	}
	for i, e := range ds.Environments {
		e.AnimalIDs = append([]string{}, e.AnimalIDs...)
		s.environments = append(s.environments, e)
		s.envIndex[e.ID] = i
	}
	return s, nil
}

func (s *MemoryStore) Animals(ctx context.Context) ([]api.Animal, error) {
	out := make([]api.Animal, 0, len(s.animals))
	for _, a := range s.animals {
		out = append(out, a.Clone())
	}
	return out, nil
}

func (s *MemoryStore) Animal(ctx context.Context, id string) (api.Animal, error) {
	i, ok := s.animalIndex[id]
	if !ok {
		return api.Animal{}, ErrNotFound
	}
	return s.animals[i].Clone(), nil
}

func (s *MemoryStore) Environments(ctx context.Context) ([]api.Environment, error) {
	out := make([]api.Environment, 0, len(s.environments))
	for _, rec := range s.environments {
		out = append(out, s.expand(rec))
	}
	return out, nil
}

func (s *MemoryStore) Environment(ctx context.Context, id string) (api.Environment, error) {
	i, ok := s.envIndex[id]
	if !ok {
		return api.Environment{}, ErrNotFound
	}
	return s.expand(s.environments[i]), nil
}

func (s *MemoryStore) AnimalsByEnvironment(ctx context.Context, environmentID string) ([]api.Animal, error) {
	i, ok := s.envIndex[environmentID]
	if !ok {
		return []api.Animal{}, nil
	}
	return s.expand(s.environments[i]).Animals, nil
}

func (s *MemoryStore) expand(rec EnvironmentRecord) api.Environment {
	env := api.Environment{
		ID:          rec.ID,
		Name:        rec.Name,
		Image:       rec.Image,
		Description: rec.Description,
		Animals:     make([]api.Animal, 0, len(rec.AnimalIDs)),
	}
	for _, id := range rec.AnimalIDs {
		if i, ok := s.animalIndex[id]; ok {
			env.Animals = append(env.Animals, s.animals[i].Clone())
		}
	}
	return env
}
