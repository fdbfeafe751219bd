package instrumentation

// Cardinality management helpers for metrics and logs.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Always use these helpers when recording metrics with resource identifiers.

// documentIDPrefixLen is the number of leading characters of a Drive file ID
// kept for low-cardinality logging.
const documentIDPrefixLen = 8

// DocumentIDPrefix truncates a Drive file ID to a short prefix.
// This keeps log and metric labels recognizable without carrying the full
// identifier everywhere.
//
// Example:
//
//	DocumentIDPrefix("1a2b3c4d5e6f7g8h9i0j")  // "1a2b3c4d"
//	DocumentIDPrefix("short")                  // "short"
//	DocumentIDPrefix("")                       // "unknown"
func DocumentIDPrefix(id string) string {
	if id == "" {
		return "unknown"
	}
	if len(id) <= documentIDPrefixLen {
		return id
	}
	return id[:documentIDPrefixLen]
}

// Common operation types for API metrics.
// Status and Service constants are defined in config.go.
const (
	OperationList    = "list"
	OperationGet     = "get"
	OperationCreate  = "create"
	OperationUpdate  = "update"
	OperationInsert  = "insert"
	OperationReplace = "replace"
	OperationSearch  = "search"
)
