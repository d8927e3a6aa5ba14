package mockapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"animalsctl/pkg/logging"
)

// ServerConfig configures the mock server.
type ServerConfig struct {
	Host string
	Port int
	// BasePath is the prefix the endpoints are mounted under.
	BasePath string
	// FixturesPath is a YAML dataset; empty uses the built-in fixtures.
	FixturesPath string
	// DBPath, when set, persists the dataset in a bolt file.
	DBPath string
}

// Server serves a fixture dataset over HTTP.
type Server struct {
	config     ServerConfig
	store      Store
	closer     io.Closer
	httpServer *http.Server
	listener   net.Listener

	mu      sync.Mutex
	serveWg sync.WaitGroup
}

// NewServer loads the dataset and prepares the store. It does not listen yet.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.BasePath == "" {
		cfg.BasePath = DefaultBasePath
	}

	var ds Dataset
	var err error
	if cfg.FixturesPath != "" {
		ds, err = LoadDataset(cfg.FixturesPath)
	} else {
		ds, err = DefaultDataset()
	}
	if err != nil {
		return nil, err
	}

	s := &Server{config: cfg}
	if cfg.DBPath != "" {
		bs, err := OpenBoltStore(cfg.DBPath, ds)
		if err != nil {
			return nil, err
		}
		s.store = bs
		s.closer = bs
	} else {
		ms, err := NewMemoryStore(ds)
		if err != nil {
			return nil, err
		}
		s.store = ms
	}
	return s, nil
}

// Start begins listening. Port 0 picks a free port; see Addr.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer != nil {
		return fmt.Errorf("mock API server already started")
	}

	addr := net.JoinHostPort(s.config.Host, fmt.Sprintf("%d", s.config.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = ln
	s.httpServer = &http.Server{
		Handler:           NewRouter(s.store, s.config.BasePath),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	logging.Info(routerSubsystem, "Serving mock Animals API on %s", s.BaseURL())

	srv := s.httpServer
	s.serveWg.Add(1)
	go func() {
		defer s.serveWg.Done()
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(routerSubsystem, err, "Mock API server stopped unexpectedly")
		}
	}()
	return nil
}

// Addr returns the listening address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// BaseURL is the value to configure as api.baseURL to talk to this server.
func (s *Server) BaseURL() string {
	return fmt.Sprintf("http://%s%s/", s.Addr(), strings.TrimRight(normaliseBasePath(s.config.BasePath), "/"))
}

// Stop shuts the server down and closes the store.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	s.httpServer = nil
	s.mu.Unlock()

	var errs []error
	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("shutting down mock API server: %w", err))
		}
		s.serveWg.Wait()
	}
	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			errs = append(errs, err)
		}
		s.closer = nil
	}
	return errors.Join(errs...)
}
