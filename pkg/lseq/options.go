// Package lseq provides the public API for the lseq interpreter.
package lseq

import (
	"io"

	"nickandperla.net/lseq/internal/store"
)

// Option configures a Runtime.
type Option func(*Runtime)

// WithSQLiteStore configures SQLite-backed session history at the given
// path.
func WithSQLiteStore(path string) Option {
	return func(r *Runtime) {
		s, err := store.NewSQLite(path)
		if err != nil {
			r.storeErr = err
			return
		}
		r.store = s
	}
}

// WithMemoryStore configures an in-memory history store (for testing).
func WithMemoryStore() Option {
	return func(r *Runtime) {
		r.store = store.NewMemory()
	}
}

// WithStore configures a custom history store.
func WithStore(s Store) Option {
	return func(r *Runtime) {
		r.store = s
	}
}

// WithNoHistory disables session history recording.
func WithNoHistory() Option {
	return func(r *Runtime) {
		r.noHistory = true
	}
}

// WithHistoryLimit caps how many entries the history command reports.
func WithHistoryLimit(n int) Option {
	return func(r *Runtime) {
		r.historyLimit = n
	}
}

// WithOutputWriter sets the output writer for the print command.
func WithOutputWriter(writer func(text string) error) Option {
	return func(r *Runtime) {
		r.outputWriter = writer
	}
}

// WithOutput sets the io.Writer for output.
func WithOutput(w io.Writer) Option {
	return func(r *Runtime) {
		r.outputWriter = func(text string) error {
			_, err := w.Write([]byte(text))
			return err
		}
	}
}
