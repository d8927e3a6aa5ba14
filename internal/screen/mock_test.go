package screen

import (
	"context"

	"animalsctl/internal/api"

	"github.com/stretchr/testify/mock"
)

type MockAnimalsAPI struct {
	mock.Mock
}

func (m *MockAnimalsAPI) ListAnimals(ctx context.Context) ([]api.Animal, error) {
	args := m.Called(ctx)
	animals, _ := args.Get(0).([]api.Animal)
	return animals, args.Error(1)
}

func (m *MockAnimalsAPI) ListEnvironments(ctx context.Context) ([]api.Environment, error) {
	args := m.Called(ctx)
	environments, _ := args.Get(0).([]api.Environment)
	return environments, args.Error(1)
}

func (m *MockAnimalsAPI) GetAnimal(ctx context.Context, id string) (api.Animal, error) {
	args := m.Called(ctx, id)
	animal, _ := args.Get(0).(api.Animal)
	return animal, args.Error(1)
}

func (m *MockAnimalsAPI) GetEnvironment(ctx context.Context, id string) (api.Environment, error) {
	args := m.Called(ctx, id)
	env, _ := args.Get(0).(api.Environment)
	return env, args.Error(1)
}

func (m *MockAnimalsAPI) ListAnimalsByEnvironment(ctx context.Context, environmentID string) ([]api.Animal, error) {
	args := m.Called(ctx, environmentID)
	animals, _ := args.Get(0).([]api.Animal)
	return animals, args.Error(1)
}

var _ api.AnimalsAPI = (*MockAnimalsAPI)(nil)
