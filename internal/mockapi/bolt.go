package mockapi

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"animalsctl/internal/api"

	bolt "github.com/boltdb/bolt"
)

var (
	animalsBucket       = []byte("animals")
	animalIDsBucket     = []byte("animal_ids")
	environmentsBucket  = []byte("environments")
	environmentIDBucket = []byte("environment_ids")
)

// BoltStore keeps the mock dataset in a BoltDB file so edits made to the file
// survive restarts of the mock server. Records are keyed by insertion
// sequence to keep the fixture order stable.
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens (or creates) the database at path. When the database is
// empty it is seeded with seed.
func OpenBoltStore(path string, seed Dataset) (*BoltStore, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt store %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{animalsBucket, animalIDsBucket, environmentsBucket, environmentIDBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		if k, _ := tx.Bucket(animalsBucket).Cursor().First(); k != nil {
			return nil
		}
		if k, _ := tx.Bucket(environmentsBucket).Cursor().First(); k != nil {
			return nil
		}
		return seedTx(tx, seed)
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialise bolt store %s: %w", path, err)
	}
	return &BoltStore{db: db}, nil
}

// Close releases the database file lock.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func seedTx(tx *bolt.Tx, ds Dataset) error {
	animals := tx.Bucket(animalsBucket)
	animalIDs := tx.Bucket(animalIDsBucket)
	for _, a := range ds.Animals {
		if err := putSequenced(animals, animalIDs, a.ID, a); err != nil {
			return err
		}
	}
	environments := tx.Bucket(environmentsBucket)
	environmentIDs := tx.Bucket(environmentIDBucket)
	for _, e := range ds.Environments {
		if err := putSequenced(environments, environmentIDs, e.ID, e); err != nil {
			return err
		}
	}
	return nil
}

func putSequenced(records, ids *bolt.Bucket, id string, v interface{}) error {
	seq, err := records.NextSequence()
	if err != nil {
		return err
	}
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := records.Put(key, data); err != nil {
		return err
	}
	return ids.Put([]byte(id), key)
}

func (s *BoltStore) Animals(ctx context.Context) ([]api.Animal, error) {
	out := []api.Animal{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(animalsBucket).ForEach(func(_, v []byte) error {
			var a api.Animal
			if err := json.Unmarshal(v, &a); err != nil {
				return err
			}
			out = append(out, a)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BoltStore) Animal(ctx context.Context, id string) (api.Animal, error) {
	var a api.Animal
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		a, err = animalTx(tx, id)
		return err
	})
	return a, err
}

func (s *BoltStore) Environments(ctx context.Context) ([]api.Environment, error) {
	out := []api.Environment{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(environmentsBucket).ForEach(func(_, v []byte) error {
			var rec EnvironmentRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			env, err := expandTx(tx, rec)
			if err != nil {
				return err
			}
			out = append(out, env)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BoltStore) Environment(ctx context.Context, id string) (api.Environment, error) {
	var env api.Environment
	err := s.db.View(func(tx *bolt.Tx) error {
		rec, err := environmentRecordTx(tx, id)
		if err != nil {
			return err
		}
		env, err = expandTx(tx, rec)
		return err
	})
	return env, err
}

func (s *BoltStore) AnimalsByEnvironment(ctx context.Context, environmentID string) ([]api.Animal, error) {
	animals := []api.Animal{}
	err := s.db.View(func(tx *bolt.Tx) error {
		rec, err := environmentRecordTx(tx, environmentID)
		if err == ErrNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		env, err := expandTx(tx, rec)
		if err != nil {
			return err
		}
		animals = env.Animals
		return nil
	})
	if err != nil {
		return nil, err
	}
	return animals, nil
}

func animalTx(tx *bolt.Tx, id string) (api.Animal, error) {
	key := tx.Bucket(animalIDsBucket).Get([]byte(id))
	if key == nil {
		return api.Animal{}, ErrNotFound
	}
	v := tx.Bucket(animalsBucket).Get(key)
	if v == nil {
		return api.Animal{}, ErrNotFound
	}
	var a api.Animal
	if err := json.Unmarshal(v, &a); err != nil {
		return api.Animal{}, err
	}
	return a, nil
}

func environmentRecordTx(tx *bolt.Tx, id string) (EnvironmentRecord, error) {
	key := tx.Bucket(environmentIDBucket).Get([]byte(id))
	if key == nil {
		return EnvironmentRecord{}, ErrNotFound
	}
	v := tx.Bucket(environmentsBucket).Get(key)
	if v == nil {
		return EnvironmentRecord{}, ErrNotFound
	}
	var rec EnvironmentRecord
	if err := json.Unmarshal(v, &rec); err != nil {
		return EnvironmentRecord{}, err
	}
	return rec, nil
}

func expandTx(tx *bolt.Tx, rec EnvironmentRecord) (api.Environment, error) {
	env := api.Environment{
		ID:          rec.ID,
		Name:        rec.Name,
		Image:       rec.Image,
		Description: rec.Description,
		Animals:     make([]api.Animal, 0, len(rec.AnimalIDs)),
	}
	for _, id := range rec.AnimalIDs {
		a, err := animalTx(tx, id)
		if err == ErrNotFound {
			continue
		}
		if err != nil {
			return api.Environment{}, err
		}
		env.Animals = append(env.Animals, a)
	}
	return env, nil
}
