package ports

import "context"

// DatabaseHealthChecker defines the interface for storage health checks.
type DatabaseHealthChecker interface {
	// Ping checks that the storage backend is reachable and query-capable.
	Ping(ctx context.Context) error
}
