package snapshot

import "context"

// Store is a persistence backend for the whole snapshot. Backends are
// swappable blob stores; the session layer treats both operations as
// opaque and best-effort.
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
}
