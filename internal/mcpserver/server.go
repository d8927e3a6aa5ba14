package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"animalsctl/internal/api"
	"animalsctl/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName = "animalsctl"
	subsystem  = "MCP"
)

// Server exposes the Animals operations as MCP tools.
type Server struct {
	api     api.AnimalsAPI
	version string
	mcp     *server.MCPServer
}

// New builds a server whose tools read through client.
func New(client api.AnimalsAPI, version string) *Server {
	if version == "" {
		version = "dev"
	}
	s := &Server{
		api:     client,
		version: version,
	}
	s.mcp = server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
	)
	s.mcp.AddTools(s.serverTools()...)
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// ServeStdio speaks MCP over in/out until ctx is done or in is closed.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	err := stdio.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio transport: %w", err)
	}
	return nil
}

// ServeSSE serves MCP over Server-Sent Events on host:port until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, host string, port int) error {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	sse := server.NewSSEServer(
		s.mcp,
		server.WithBaseURL("http://"+addr),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- sse.Start(addr)
	}()
	logging.Info(subsystem, "Serving MCP tools on http://%s/sse", addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("sse transport: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Info(subsystem, "Stopping MCP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sse.Shutdown(shutdownCtx); err != nil {
		logging.Error(subsystem, err, "Error shutting down SSE server")
		return err
	}
	return nil
}
