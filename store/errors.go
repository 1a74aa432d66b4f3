package store

import "errors"

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrNoPersister      = errors.New("store has no persister")

	// ErrInvalidSnapshotID is returned by the file persisters for IDs that
	// are empty or contain path separators.
	ErrInvalidSnapshotID = errors.New("invalid snapshot id")
)
