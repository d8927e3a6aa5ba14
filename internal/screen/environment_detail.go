package screen

import (
	"context"
	"strings"

	"animalsctl/internal/api"
	"animalsctl/pkg/logging"

	"golang.org/x/sync/errgroup"
)

// InvalidEnvironmentIDMessage is shown when the environment detail has no id
// to load.
const InvalidEnvironmentIDMessage = "Invalid Environment ID"

// EnvironmentDetailData is what the environment detail shows: the environment
// itself and the animals listed for it by the animals endpoint.
type EnvironmentDetailData struct {
	Environment api.Environment `json:"environment" yaml:"environment"`
	Animals     []api.Animal    `json:"animals" yaml:"animals"`
}

// EnvironmentDetail loads one environment and its animals. The two requests
// run concurrently and both must succeed; the screen is Empty when the
// environment has no animals.
type EnvironmentDetail struct {
	*lifecycle[EnvironmentDetailData]
	client   api.AnimalsAPI
	id       string
	onSelect SelectFunc
}

func NewEnvironmentDetail(client api.AnimalsAPI, id string, onSelect SelectFunc) *EnvironmentDetail {
	return &EnvironmentDetail{
		lifecycle: newLifecycle(EnvironmentDetailScreen, "Error loading environment", func(d EnvironmentDetailData) bool {
			return len(d.Animals) == 0
		}),
		client:   client,
		id:       id,
		onSelect: onSelect,
	}
}

// SetID changes the environment to load on the next activation.
func (c *EnvironmentDetail) SetID(id string) { c.id = id }

func (c *EnvironmentDetail) ID() string { return c.id }

func (c *EnvironmentDetail) Activate(ctx context.Context) Fetch {
	id := c.id
	if strings.TrimSpace(id) == "" {
		c.invalidate(InvalidEnvironmentIDMessage)
		return nil
	}
	return c.fetch(ctx, func(ctx context.Context) (EnvironmentDetailData, error) {
		return c.fetchBoth(ctx, id)
	})
}

func (c *EnvironmentDetail) fetchBoth(ctx context.Context, id string) (EnvironmentDetailData, error) {
	var data EnvironmentDetailData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		env, err := c.client.GetEnvironment(gctx, id)
		if err != nil {
			return err
		}
		data.Environment = env
		return nil
	})
	g.Go(func() error {
		animals, err := c.client.ListAnimalsByEnvironment(gctx, id)
		if err != nil {
			return err
		}
		data.Animals = animals
		return nil
	})
	if err := g.Wait(); err != nil {
		return EnvironmentDetailData{}, err
	}
	if data.Animals == nil {
		data.Animals = []api.Animal{}
	}
	return data, nil
}

func (c *EnvironmentDetail) Load(ctx context.Context) State[EnvironmentDetailData] {
	return load(c.lifecycle, c.Activate(ctx))
}

// Select forwards the id of one of the environment's animals.
func (c *EnvironmentDetail) Select(id string) {
	logging.Debug(subsystem, "navigating from environment %s to animal %s", c.id, id)
	if c.onSelect != nil {
		c.onSelect(id)
	}
}
