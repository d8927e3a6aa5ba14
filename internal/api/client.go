package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"animalsctl/pkg/logging"

	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/time/rate"
)

const clientSubsystem = "APIClient"

const (
	// DefaultBaseURL is the public Animals service.
	DefaultBaseURL = "https://animals.juanfrausto.com/api/"
	// DefaultTimeout bounds a single request, including reading the body.
	DefaultTimeout = 15 * time.Second

	maxBodyBytes      = 8 << 20
	maxErrorBodyBytes = 512
)

// ClientConfig configures a Client.
type ClientConfig struct {
	// BaseURL is the API root; a trailing slash is added when missing.
	BaseURL string
	// Timeout is the per-request timeout. Zero means DefaultTimeout.
	Timeout time.Duration
	// UserAgent is sent with every request when non-empty.
	UserAgent string
	// RequestsPerSecond paces outgoing requests. Zero disables pacing.
	RequestsPerSecond float64
	// HTTPClient overrides the pooled client built from go-cleanhttp.
	HTTPClient *http.Client
}

// Client is the HTTP implementation of AnimalsAPI.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient validates cfg and builds a Client.
func NewClient(cfg ClientConfig) (*Client, error) {
	raw := cfg.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", raw)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: missing host", raw)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	base.RawQuery = ""
	base.Fragment = ""

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = cleanhttp.DefaultPooledClient()
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient.Timeout = timeout
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		userAgent:  cfg.UserAgent,
		limiter:    limiter,
	}, nil
}

// BaseURL returns the normalised API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ListAnimals fetches GET /animals.
func (c *Client) ListAnimals(ctx context.Context) ([]Animal, error) {
	var animals []Animal
	if err := c.get(ctx, "list animals", "animals", nil, &animals); err != nil {
		return nil, err
	}
	return nonNilAnimals(animals), nil
}

// ListEnvironments fetches GET /environments.
func (c *Client) ListEnvironments(ctx context.Context) ([]Environment, error) {
	var environments []Environment
	if err := c.get(ctx, "list environments", "environments", nil, &environments); err != nil {
		return nil, err
	}
	if environments == nil {
		environments = []Environment{}
	}
	return environments, nil
}

// GetAnimal fetches GET /animals/{id}.
func (c *Client) GetAnimal(ctx context.Context, id string) (Animal, error) {
	var animal Animal
	if err := c.get(ctx, "get animal", "animals/"+url.PathEscape(id), nil, &animal); err != nil {
		return Animal{}, err
	}
	return animal.normalized(), nil
}

// GetEnvironment fetches GET /environments/{id}.
func (c *Client) GetEnvironment(ctx context.Context, id string) (Environment, error) {
	var environment Environment
	if err := c.get(ctx, "get environment", "environments/"+url.PathEscape(id), nil, &environment); err != nil {
		return Environment{}, err
	}
	return environment.normalized(), nil
}

// ListAnimalsByEnvironment fetches GET /animals?environmentId={id}.
func (c *Client) ListAnimalsByEnvironment(ctx context.Context, environmentID string) ([]Animal, error) {
	query := url.Values{"environmentId": []string{environmentID}}
	var animals []Animal
	if err := c.get(ctx, "list animals by environment", "animals", query, &animals); err != nil {
		return nil, err
	}
	return nonNilAnimals(animals), nil
}

// get performs one GET request against the relative path and decodes the
// JSON body into out.
func (c *Client) get(ctx context.Context, op, relPath string, query url.Values, out interface{}) error {
	ref, err := url.Parse(relPath)
	if err != nil {
		return &TransportError{Op: op, URL: relPath, Err: err}
	}
	target := c.baseURL.ResolveReference(ref)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}
	endpoint := target.String()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &TransportError{Op: op, URL: endpoint, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &TransportError{Op: op, URL: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	logging.Debug(clientSubsystem, "GET %s", endpoint)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Debug(clientSubsystem, "GET %s failed after %s: %v", endpoint, time.Since(start), err)
		return &TransportError{Op: op, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &TransportError{
			Op:         op,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return &TransportError{Op: op, URL: endpoint, Err: fmt.Errorf("reading body: %w", err)}
	}
	if len(body) > maxBodyBytes {
		return &TransportError{Op: op, URL: endpoint, Err: fmt.Errorf("response body exceeds %d bytes", maxBodyBytes)}
	}
	logging.Debug(clientSubsystem, "GET %s -> %d (%d bytes, %s)", endpoint, resp.StatusCode, len(body), time.Since(start))

	// A null body is a decode failure, not a zero value.
	if isNull(body) {
		return &DecodeError{Op: op, URL: endpoint, Err: errors.New("response body is null")}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Op: op, URL: endpoint, Err: err}
	}
	return nil
}

func nonNilAnimals(animals []Animal) []Animal {
	if animals == nil {
		return []Animal{}
	}
	return animals
}
