package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/mfeld/fieldbook/internal/drive"
	"github.com/mfeld/fieldbook/internal/google"
	"github.com/mfeld/fieldbook/internal/instrumentation"
	"github.com/mfeld/fieldbook/internal/maps"
)

// ServerContext holds the shared state for an MCP server process: the
// credentials it was started with, lazily constructed API clients, and the
// instrumentation hooks used by tool handlers.
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc

	googleConfig google.Config
	driveClient  *drive.Client

	mapsAPIKey string
	mapsClient *maps.Client

	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger

	readOnly bool

	mu       sync.RWMutex
	shutdown bool
}

// Option configures a ServerContext.
type Option func(*ServerContext)

// WithGoogleConfig supplies the OAuth credentials used to build Drive clients.
func WithGoogleConfig(cfg google.Config) Option {
	return func(sc *ServerContext) {
		sc.googleConfig = cfg
	}
}

// WithMapsAPIKey supplies the API key used to build the Maps client.
func WithMapsAPIKey(key string) Option {
	return func(sc *ServerContext) {
		sc.mapsAPIKey = key
	}
}

// WithReadOnly marks the context as read-only. Tool registration skips
// mutating tools when set.
func WithReadOnly(readOnly bool) Option {
	return func(sc *ServerContext) {
		sc.readOnly = readOnly
	}
}

// NewServerContext creates a new server context. Clients are not built
// eagerly; they are created on first use so a server can start without
// credentials and report a useful error from the first tool call instead.
func NewServerContext(ctx context.Context, opts ...Option) *ServerContext {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:    shutdownCtx,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// ReadOnly reports whether mutating tools are disabled.
func (sc *ServerContext) ReadOnly() bool {
	return sc.readOnly
}

// DriveClient returns the Drive client, creating and caching it on first use.
func (sc *ServerContext) DriveClient() (*drive.Client, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.driveClient != nil {
		return sc.driveClient, nil
	}

	if err := sc.googleConfig.Validate(); err != nil {
		return nil, fmt.Errorf("drive client unavailable: %w", err)
	}

	client, err := drive.NewClient(sc.ctx, sc.googleConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive client: %w", err)
	}

	sc.driveClient = client
	return client, nil
}

// SetDriveClient sets the Drive client. Used by tests to inject fakes.
func (sc *ServerContext) SetDriveClient(client *drive.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.driveClient = client
}

// MapsClient returns the Maps client, creating and caching it on first use.
func (sc *ServerContext) MapsClient() (*maps.Client, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.mapsClient != nil {
		return sc.mapsClient, nil
	}

	client, err := maps.NewClient(sc.mapsAPIKey)
	if err != nil {
		return nil, fmt.Errorf("maps client unavailable: %w", err)
	}

	sc.mapsClient = client
	return client, nil
}

// SetMapsClient sets the Maps client. Used by tests to inject fakes.
func (sc *ServerContext) SetMapsClient(client *maps.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.mapsClient = client
}

// Metrics returns the metrics recorder, or nil if instrumentation is not
// configured.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetMetrics sets the metrics recorder used by instrumented tool handlers.
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// AuditLogger returns the audit logger, or nil if not configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// SetAuditLogger sets the audit logger used by instrumented tool handlers.
func (sc *ServerContext) SetAuditLogger(logger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = logger
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
