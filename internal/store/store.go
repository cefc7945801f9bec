// Package store provides the flat namespaced key/value store that backs the
// entity repositories: one serialized collection per key, read fully at
// session start and written fully on every mutation.
package store

import "context"

// Store keys. Each holds a JSON-serialized ordered collection.
const (
	KeyWorkers           = "workers"
	KeyMaterials         = "materials"
	KeyProjects          = "projects"
	KeyReadNotifications = "readNotifications"
)

// Store is a durable flat key/value medium. Any implementation satisfies the
// repositories; values are opaque bytes.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put writes the full value for key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
}
