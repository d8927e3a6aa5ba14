package mockapi

import (
	_ "embed"
	"fmt"
	"os"

	"animalsctl/internal/api"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/default.yaml
var defaultFixtures []byte

// EnvironmentRecord is how an environment is stored: animals are referenced
// by id and embedded when the environment is served.
type EnvironmentRecord struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Image       string   `yaml:"image" json:"image"`
	Description string   `yaml:"description" json:"description"`
	AnimalIDs   []string `yaml:"animalIds,omitempty" json:"animalIds,omitempty"`
}

// Dataset is the content of a fixture file.
type Dataset struct {
	Animals      []api.Animal        `yaml:"animals"`
	Environments []EnvironmentRecord `yaml:"environments"`
}

// DefaultDataset returns the dataset embedded in the binary.
func DefaultDataset() (Dataset, error) {
	return ParseDataset(defaultFixtures)
}

// LoadDataset reads and validates a YAML fixture file.
func LoadDataset(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to read fixtures %s: %w", path, err)
	}
	ds, err := ParseDataset(data)
	if err != nil {
		return Dataset{}, fmt.Errorf("invalid fixtures %s: %w", path, err)
	}
	return ds, nil
}

// ParseDataset decodes YAML fixtures and checks ids are unique and every
// environment only references known animals.
func ParseDataset(data []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, err
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// Validate checks the dataset's referential integrity.
func (ds Dataset) Validate() error {
	animals := make(map[string]bool, len(ds.Animals))
	for i, a := range ds.Animals {
		if a.ID == "" {
			return fmt.Errorf("animal #%d has no id", i)
		}
		if animals[a.ID] {
			return fmt.Errorf("duplicate animal id %q", a.ID)
		}
		animals[a.ID] = true
	}
	environments := make(map[string]bool, len(ds.Environments))
	for i, e := range ds.Environments {
		if e.ID == "" {
			return fmt.Errorf("environment #%d has no id", i)
		}
		if environments[e.ID] {
			return fmt.Errorf("duplicate environment id %q", e.ID)
		}
		environments[e.ID] = true
		for _, id := range e.AnimalIDs {
			if !animals[id] {
				return fmt.Errorf("environment %q references unknown animal %q", e.ID, id)
			}
		}
	}
	return nil
}
