package server

import (
	"context"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mfeld/fieldbook/internal/instrumentation"
)

// HTTPServer exposes an MCP server over the streamable HTTP transport,
// alongside the health check endpoints used by Kubernetes probes.
type HTTPServer struct {
	mcpServer     *mcpserver.MCPServer
	httpServer    *http.Server
	healthChecker *HealthChecker
	metrics       *instrumentation.Metrics
}

// NewHTTPServer creates a new HTTP transport wrapper for the given MCP server.
func NewHTTPServer(mcpServer *mcpserver.MCPServer) *HTTPServer {
	return &HTTPServer{
		mcpServer: mcpServer,
	}
}

// SetHealthChecker attaches a health checker whose endpoints are registered
// when the server starts. Must be called before Start.
func (s *HTTPServer) SetHealthChecker(hc *HealthChecker) {
	s.healthChecker = hc
}

// SetMetrics attaches a metrics recorder for HTTP request instrumentation.
// Must be called before Start.
func (s *HTTPServer) SetMetrics(metrics *instrumentation.Metrics) {
	s.metrics = metrics
}

// Start starts the HTTP server on the given address. Blocks until the server
// stops.
func (s *HTTPServer) Start(addr string) error {
	mux := http.NewServeMux()

	streamableServer := mcpserver.NewStreamableHTTPServer(s.mcpServer,
		mcpserver.WithEndpointPath("/mcp"),
	)
	mux.Handle("/mcp", streamableServer)

	if s.healthChecker != nil {
		s.healthChecker.RegisterHealthEndpoints(mux)
	}

	var handler http.Handler = mux
	if s.metrics != nil {
		handler = s.instrumentHandler(mux)
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

// statusRecorder captures the response status code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrumentHandler wraps the handler with request counting, duration, and
// in-flight request tracking.
func (s *HTTPServer) instrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.metrics.IncrementActiveRequests(r.Context())
		defer s.metrics.DecrementActiveRequests(r.Context())

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		s.metrics.RecordHTTPRequest(r.Context(), r.Method, r.URL.Path, recorder.status, time.Since(start))
	})
}

// Shutdown gracefully shuts down the server
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.healthChecker != nil {
		// Fail readiness first so load balancers drain before connections close
		s.healthChecker.SetReady(false)
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Addr returns the configured address, or an empty string before Start.
func (s *HTTPServer) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}
