// Package store provides persistence for lseq session history.
package store

// Entry is a single recorded command line.
type Entry struct {
	Seq  int64  // monotonically increasing sequence number
	Line string // the command as typed
	Ts   string // record timestamp
}

// Store is the interface for session history persistence.
type Store interface {
	// Append records a command line at the end of the history.
	Append(line string) error
	// Recent returns up to limit entries, newest first. A limit of zero
	// or less returns everything.
	Recent(limit int) ([]Entry, error)
	// Clear removes all recorded history.
	Clear() error
	// Close releases resources.
	Close() error
}

// MetadataStore extends Store with metadata operations.
type MetadataStore interface {
	Store
	GetMetadata(key string) (string, error)
	SetMetadata(key, value string) error
}
