package cmd

import (
	"animalsctl/internal/app"

	"github.com/spf13/cobra"
)

var (
	mockAPIHost     string
	mockAPIPort     int
	mockAPIFixtures string
	mockAPIDB       string
)

// mockAPICmd serves a fixture dataset on the Animals endpoints.
var mockAPICmd = &cobra.Command{
	Use:   "mock-api",
	Short: "Serve fixture data on the Animals API endpoints",
	Long: `Starts a local HTTP server that answers the five Animals endpoints
(/api/animals, /api/animals/{id}, /api/animals?environmentId={id},
/api/environments, /api/environments/{id}) from a fixture dataset.

Without --fixtures the built-in dataset is served. With --db the dataset is
seeded into a bolt file and served from there.

Point the client at it with:
  animalsctl browse --base-url http://localhost:8090/api/`,
	Args: cobra.NoArgs,
	RunE: runMockAPI,
}

func runMockAPI(cmd *cobra.Command, args []string) error {
	application, err := newApplication(cmd, func(cfg *app.Config) {
		cfg.MockAPI.Host = mockAPIHost
		cfg.MockAPI.Port = mockAPIPort
		cfg.MockAPI.Fixtures = mockAPIFixtures
		cfg.MockAPI.DBPath = mockAPIDB
	})
	if err != nil {
		return err
	}
	return application.RunMockAPI(commandContext(cmd))
}

func init() {
	rootCmd.AddCommand(mockAPICmd)

	mockAPICmd.Flags().StringVar(&mockAPIHost, "host", "", "Host to bind (overrides mockAPI.host)")
	mockAPICmd.Flags().IntVar(&mockAPIPort, "port", 0, "Port to bind (overrides mockAPI.port)")
	mockAPICmd.Flags().StringVar(&mockAPIFixtures, "fixtures", "", "YAML fixture file (overrides mockAPI.fixtures)")
	mockAPICmd.Flags().StringVar(&mockAPIDB, "db", "", "Bolt database file (overrides mockAPI.dbPath)")
}
