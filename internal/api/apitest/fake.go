// Package apitest provides an in-memory api.AnimalsAPI for tests of code
// that consumes the Animals service.
package apitest

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"animalsctl/internal/api"
)

// Operation names reported by Calls.
const (
	OpListAnimals              = "ListAnimals"
	OpListEnvironments         = "ListEnvironments"
	OpGetAnimal                = "GetAnimal"
	OpGetEnvironment           = "GetEnvironment"
	OpListAnimalsByEnvironment = "ListAnimalsByEnvironment"
)

// Fake serves a fixed dataset. Environments reference their animals through
// the embedded Animals slice. Set Err to make every call fail.
type Fake struct {
	mu           sync.Mutex
	Animals      []api.Animal
	Environments []api.Environment
	Err          error
	calls        map[string]int
}

var _ api.AnimalsAPI = (*Fake)(nil)

// NewFake returns a fake holding three animals and three environments, the
// last of which has no animals.
func NewFake() *Fake {
	lion := api.Animal{
		ID: "a1", Name: "Lion", Image: "https://img.example/lion.jpg",
		Description:  "Large cat of the savanna.",
		ImageGallery: []string{"https://img.example/lion-1.jpg"},
		Facts:        []string{"Lions sleep up to 20 hours a day."},
	}
	penguin := api.Animal{
		ID: "a2", Name: "Emperor Penguin", Image: "https://img.example/penguin.jpg",
		Description:  "Largest living penguin.",
		ImageGallery: []string{},
		Facts:        []string{"Males incubate the egg."},
	}
	fish := api.Animal{
		ID: "a3", Name: "Clownfish", Image: "https://img.example/fish.jpg",
		Description:  "Lives among anemones.",
		ImageGallery: []string{},
		Facts:        []string{},
	}
	return &Fake{
		Animals: []api.Animal{lion, penguin, fish},
		Environments: []api.Environment{
			{ID: "e1", Name: "Savanna", Image: "https://img.example/savanna.jpg", Description: "Grassland.", Animals: []api.Animal{lion}},
			{ID: "e2", Name: "Antarctica", Image: "https://img.example/ice.jpg", Description: "Ice.", Animals: []api.Animal{penguin}},
			{ID: "e3", Name: "Desert", Image: "https://img.example/desert.jpg", Description: "Dry.", Animals: []api.Animal{}},
		},
	}
}

// Calls returns how many times op was invoked.
func (f *Fake) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

// TotalCalls returns the number of calls across all operations.
func (f *Fake) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

// SetErr changes the error returned by every call.
func (f *Fake) SetErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Err = err
}

func (f *Fake) begin(ctx context.Context, op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[op]++
	if err := ctx.Err(); err != nil {
		return &api.TransportError{Op: op, URL: "fake://" + op, Err: err}
	}
	return f.Err
}

func notFound(op, id string) error {
	return &api.TransportError{Op: op, URL: "fake://" + id, StatusCode: http.StatusNotFound, Body: fmt.Sprintf("%s not found", id)}
}

func (f *Fake) ListAnimals(ctx context.Context) ([]api.Animal, error) {
	if err := f.begin(ctx, OpListAnimals); err != nil {
		return nil, err
	}
	out := make([]api.Animal, 0, len(f.Animals))
	for _, a := range f.Animals {
		out = append(out, a.Clone())
	}
	return out, nil
}

func (f *Fake) ListEnvironments(ctx context.Context) ([]api.Environment, error) {
	if err := f.begin(ctx, OpListEnvironments); err != nil {
		return nil, err
	}
	out := make([]api.Environment, 0, len(f.Environments))
	for _, e := range f.Environments {
		out = append(out, e.Clone())
	}
	return out, nil
}

func (f *Fake) GetAnimal(ctx context.Context, id string) (api.Animal, error) {
	if err := f.begin(ctx, OpGetAnimal); err != nil {
		return api.Animal{}, err
	}
	for _, a := range f.Animals {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return api.Animal{}, notFound(OpGetAnimal, id)
}

func (f *Fake) GetEnvironment(ctx context.Context, id string) (api.Environment, error) {
	if err := f.begin(ctx, OpGetEnvironment); err != nil {
		return api.Environment{}, err
	}
	for _, e := range f.Environments {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	return api.Environment{}, notFound(OpGetEnvironment, id)
}

// ListAnimalsByEnvironment returns an empty list for an unknown environment,
// as the service does.
func (f *Fake) ListAnimalsByEnvironment(ctx context.Context, environmentID string) ([]api.Animal, error) {
	if err := f.begin(ctx, OpListAnimalsByEnvironment); err != nil {
		return nil, err
	}
	for _, e := range f.Environments {
		if e.ID == environmentID {
			return e.Clone().Animals, nil
		}
	}
	return []api.Animal{}, nil
}
