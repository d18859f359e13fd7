// Package rest implements the repository contracts against the gym REST backend.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/maxviazov/gym-console/internal/config"
	"github.com/maxviazov/gym-console/internal/repository"
)

const startupPingTimeout = 5 * time.Second

// Client is the shared HTTP client every resource repository goes through.
type Client struct {
	baseURL    string
	healthPath string
	http       *http.Client
	log        zerolog.Logger
}

// New builds the backend client from config. When startup_ping is enabled it
// also checks the backend answers before the console starts serving.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Client, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	u, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend base url %q", cfg.Backend.BaseURL)
	}

	l := logger.With().Str("module", "repository").Str("component", "rest").Logger()
	transport := otelhttp.NewTransport(newLoggingTransport(http.DefaultTransport, l))

	c := &Client{
		baseURL:    strings.TrimRight(u.String(), "/"),
		healthPath: cfg.Backend.HealthPath,
		http:       &http.Client{Transport: transport, Timeout: cfg.Backend.Timeout},
		log:        l,
	}

	if cfg.Backend.StartupPing {
		pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
		defer cancel()
		if err := c.Ping(pingCtx); err != nil {
			return nil, fmt.Errorf("failed to ping backend: %w", err)
		}
	}

	logger.Info().Str("base_url", c.baseURL).Dur("timeout", cfg.Backend.Timeout).Msg("Backend client ready")
	return c, nil
}

// Ping implements repository.Pinger against the backend health path.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, c.healthPath, nil, nil)
	return err
}

// do sends one JSON request. It reports whether a response body was decoded
// into out; backends may answer 201/200 with an empty body.
func (c *Client) do(ctx context.Context, method, path string, in, out any) (bool, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return false, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return false, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("%s %s: %w: %w", method, path, repository.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := repository.MapStatus(resp.StatusCode); err != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, err
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return false, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return true, nil
}

var _ repository.Pinger = (*Client)(nil)
