package ports

import "github.com/tarhses/cdeps/internal/core/domain"

// SnapshotStore defines the interface for persisting scan snapshots.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Load retrieves the last recorded snapshot.
	// Returns nil, nil if none has been recorded yet.
	Load() (*domain.Snapshot, error)

	// Save records the snapshot, replacing any previous one.
	Save(snapshot *domain.Snapshot) error
}
