// Package server provides the shared process context and HTTP plumbing for
// the fieldbook MCP servers.
//
// # Key Components
//
// ServerContext holds the credentials a server was started with and builds
// the Google Drive and Maps clients lazily on first use, so a server can
// start without credentials and surface a useful error from the first tool
// call. It also carries the metrics recorder and audit logger that
// instrumented tool handlers pick up.
//
// HTTPServer exposes an MCP server over the streamable HTTP transport at
// /mcp, with health check endpoints registered alongside.
//
// HealthChecker serves /healthz, /readyz and /healthz/detailed for
// Kubernetes probes.
//
// MetricsServer serves Prometheus metrics on a dedicated port, isolated from
// the main application traffic.
package server
