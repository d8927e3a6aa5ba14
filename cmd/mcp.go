package cmd

import (
	"animalsctl/internal/app"

	"github.com/spf13/cobra"
)

var (
	mcpTransport string
	mcpHost      string
	mcpPort      int
)

// mcpCmd exposes the Animals operations as MCP tools.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the Animals operations as MCP tools",
	Long: `Runs a Model Context Protocol server so AI assistants can query the
Animals service.

Tools:
  list_animals                 - List every animal
  get_animal                   - Get one animal (id)
  list_environments            - List every environment
  get_environment              - Get one environment and its animals (id)
  list_animals_by_environment  - List the animals of an environment (environmentId)

The default stdio transport is meant to be launched by the assistant itself.
Use --transport sse to serve over HTTP at http://<host>:<port>/sse instead.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	application, err := newApplication(cmd, func(cfg *app.Config) {
		cfg.MCP.Transport = mcpTransport
		cfg.MCP.Host = mcpHost
		cfg.MCP.Port = mcpPort
	})
	if err != nil {
		return err
	}
	return application.RunMCP(commandContext(cmd))
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().StringVar(&mcpTransport, "transport", "", "Transport: stdio or sse (overrides mcp.transport)")
	mcpCmd.Flags().StringVar(&mcpHost, "host", "", "Host to bind for sse (overrides mcp.host)")
	mcpCmd.Flags().IntVar(&mcpPort, "port", 0, "Port to bind for sse (overrides mcp.port)")
}
