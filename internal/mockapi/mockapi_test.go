package mockapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"animalsctl/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFixtures = `
animals:
  - id: a1
    name: Lion
    image: https://img/lion.jpg
    description: King
    imageGallery: [https://img/lion-1.jpg]
    facts: [Roars]
  - id: a2
    name: Clownfish
    image: https://img/fish.jpg
    description: Reef fish
environments:
  - id: e1
    name: Savanna
    image: https://img/savanna.jpg
    description: Grassland
    animalIds: [a1]
  - id: e2
    name: Desert
    image: https://img/desert.jpg
    description: Dry
`

func testDataset(t *testing.T) Dataset {
	t.Helper()
	ds, err := ParseDataset([]byte(testFixtures))
	require.NoError(t, err)
	return ds
}

func serve(t *testing.T, store Store, target string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(store, DefaultBasePath)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDefaultDataset_IsValid(t *testing.T) {
	ds, err := DefaultDataset()
	require.NoError(t, err)
	assert.NotEmpty(t, ds.Animals)
	assert.NotEmpty(t, ds.Environments)
}

func TestParseDataset_RejectsBrokenReferences(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "duplicate animal",
			yaml:    "animals: [{id: a1}, {id: a1}]",
			wantErr: `duplicate animal id "a1"`,
		},
		{
			name:    "unknown animal reference",
			yaml:    "animals: [{id: a1}]\nenvironments: [{id: e1, animalIds: [zz]}]",
			wantErr: `references unknown animal "zz"`,
		},
		{
			name:    "missing environment id",
			yaml:    "environments: [{name: nowhere}]",
			wantErr: "environment #0 has no id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDataset([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDataset_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testFixtures), 0644))

	ds, err := LoadDataset(path)
	require.NoError(t, err)
	assert.Len(t, ds.Animals, 2)
	assert.Len(t, ds.Environments, 2)
}

func TestRouter_Endpoints(t *testing.T) {
	store, err := NewMemoryStore(testDataset(t))
	require.NoError(t, err)

	t.Run("list animals", func(t *testing.T) {
		w := serve(t, store, "/api/animals")
		require.Equal(t, http.StatusOK, w.Code)
		var animals []api.Animal
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &animals))
		require.Len(t, animals, 2)
		assert.Equal(t, "a1", animals[0].ID)
	})

	t.Run("optional fields are omitted on the wire", func(t *testing.T) {
		w := serve(t, store, "/api/animals/a2")
		require.Equal(t, http.StatusOK, w.Code)
		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.Equal(t, "a2", raw["_id"])
		assert.NotContains(t, raw, "imageGallery")
		assert.NotContains(t, raw, "facts")
	})

	t.Run("animals by environment", func(t *testing.T) {
		w := serve(t, store, "/api/animals?environmentId=e1")
		require.Equal(t, http.StatusOK, w.Code)
		var animals []api.Animal
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &animals))
		require.Len(t, animals, 1)
		assert.Equal(t, "Lion", animals[0].Name)
	})

	t.Run("animals by empty environment", func(t *testing.T) {
		w := serve(t, store, "/api/animals?environmentId=e2")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("environment embeds animals", func(t *testing.T) {
		w := serve(t, store, "/api/environments/e1")
		require.Equal(t, http.StatusOK, w.Code)
		var env api.Environment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "Savanna", env.Name)
		require.Len(t, env.Animals, 1)
		assert.Equal(t, "a1", env.Animals[0].ID)
	})

	t.Run("unknown animal is 404", func(t *testing.T) {
		w := serve(t, store, "/api/animals/nope")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown environment is 404", func(t *testing.T) {
		w := serve(t, store, "/api/environments/nope")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBoltStore_SeedsOnceAndServes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animals.db")
	ctx := context.Background()

	bs, err := OpenBoltStore(path, testDataset(t))
	require.NoError(t, err)

	animals, err := bs.Animals(ctx)
	require.NoError(t, err)
	require.Len(t, animals, 2)
	assert.Equal(t, "a1", animals[0].ID, "insertion order is preserved")
	assert.Equal(t, []string{}, animals[1].Facts)

	env, err := bs.Environment(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, env.Animals, 1)

	_, err = bs.Animal(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	byEnv, err := bs.AnimalsByEnvironment(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, byEnv)
	require.NoError(t, bs.Close())

	// Reopening with a different seed keeps the stored data.
	other, err := ParseDataset([]byte("animals: [{id: z9, name: Zebra}]"))
	require.NoError(t, err)
	bs, err = OpenBoltStore(path, other)
	require.NoError(t, err)
	defer bs.Close()

	animals, err = bs.Animals(ctx)
	require.NoError(t, err)
	assert.Len(t, animals, 2)
}

func TestServer_StartStop(t *testing.T) {
	srv, err := NewServer(ServerConfig{Host: "127.0.0.1", Port: 0})
	require.NoError(t, err)
	require.NoError(t, srv.Start(context.Background()))
	defer srv.Stop(context.Background())

	assert.Error(t, srv.Start(context.Background()), "second start must fail")

	resp, err := http.Get(srv.BaseURL() + "environments")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
