package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"animalsctl/internal/api"
	"animalsctl/internal/screen"
	"animalsctl/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names.
const (
	ToolListAnimals              = "list_animals"
	ToolGetAnimal                = "get_animal"
	ToolListEnvironments         = "list_environments"
	ToolGetEnvironment           = "get_environment"
	ToolListAnimalsByEnvironment = "list_animals_by_environment"
)

// Tools returns the tool definitions served by s.
func (s *Server) Tools() []mcp.Tool {
	serverTools := s.serverTools()
	tools := make([]mcp.Tool, 0, len(serverTools))
	for _, st := range serverTools {
		tools = append(tools, st.Tool)
	}
	return tools
}

func (s *Server) serverTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool(ToolListAnimals,
				mcp.WithDescription("List every animal"),
			),
			Handler: s.HandleListAnimals,
		},
		{
			Tool: mcp.NewTool(ToolGetAnimal,
				mcp.WithDescription("Get one animal with its gallery and facts"),
				mcp.WithString("id",
					mcp.Required(),
					mcp.Description("Animal id"),
				),
			),
			Handler: s.HandleGetAnimal,
		},
		{
			Tool: mcp.NewTool(ToolListEnvironments,
				mcp.WithDescription("List every environment"),
			),
			Handler: s.HandleListEnvironments,
		},
		{
			Tool: mcp.NewTool(ToolGetEnvironment,
				mcp.WithDescription("Get one environment together with the animals that live in it"),
				mcp.WithString("id",
					mcp.Required(),
					mcp.Description("Environment id"),
				),
			),
			Handler: s.HandleGetEnvironment,
		},
		{
			Tool: mcp.NewTool(ToolListAnimalsByEnvironment,
				mcp.WithDescription("List the animals of one environment"),
				mcp.WithString("environmentId",
					mcp.Required(),
					mcp.Description("Environment id"),
				),
			),
			Handler: s.HandleListAnimalsByEnvironment,
		},
	}
}

// HandleListAnimals handles the list_animals tool
func (s *Server) HandleListAnimals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logging.Debug(subsystem, "Tool %s called", ToolListAnimals)
	return stateResult(screen.NewAnimalList(s.api, nil).Load(ctx))
}

// HandleGetAnimal handles the get_animal tool
func (s *Server) HandleGetAnimal(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	logging.Debug(subsystem, "Tool %s called for %q", ToolGetAnimal, id)
	return stateResult(screen.NewAnimalDetail(s.api, id).Load(ctx))
}

// HandleListEnvironments handles the list_environments tool
func (s *Server) HandleListEnvironments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logging.Debug(subsystem, "Tool %s called", ToolListEnvironments)
	return stateResult(screen.NewEnvironmentList(s.api, nil).Load(ctx))
}

// HandleGetEnvironment handles the get_environment tool
func (s *Server) HandleGetEnvironment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	logging.Debug(subsystem, "Tool %s called for %q", ToolGetEnvironment, id)
	return stateResult(screen.NewEnvironmentDetail(s.api, id, nil).Load(ctx))
}

// HandleListAnimalsByEnvironment handles the list_animals_by_environment tool.
// No screen loads this list on its own, so it calls the API directly.
func (s *Server) HandleListAnimalsByEnvironment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("environmentId")
	if err != nil {
		return mcp.NewToolResultError("environmentId parameter is required"), nil
	}
	if strings.TrimSpace(id) == "" {
		return mcp.NewToolResultError(screen.InvalidEnvironmentIDMessage), nil
	}
	logging.Debug(subsystem, "Tool %s called for %q", ToolListAnimalsByEnvironment, id)

	animals, err := s.api.ListAnimalsByEnvironment(ctx, id)
	if err != nil {
		logging.Error(subsystem, err, "Tool %s failed", ToolListAnimalsByEnvironment)
		return mcp.NewToolResultError(fmt.Sprintf("Error loading animals: %v (%s)", err, api.KindOf(err))), nil
	}
	return jsonResult(animals)
}

// stateResult turns a settled screen state into a tool result. Failures are
// reported as tool errors so the client sees them as content.
func stateResult[T any](s screen.State[T]) (*mcp.CallToolResult, error) {
	switch s.Phase {
	case screen.PhaseLoaded:
		return jsonResult(s.Data)
	case screen.PhaseFailed:
		return mcp.NewToolResultError(fmt.Sprintf("%s (%s)", s.Message, s.Kind)), nil
	default:
		return mcp.NewToolResultError(s.Message), nil
	}
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
