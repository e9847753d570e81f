package lseq

import (
	"io"
	"os"

	"nickandperla.net/lseq/internal/eval"
	"nickandperla.net/lseq/internal/store"
)

// Runtime is the lseq interpreter runtime.
type Runtime struct {
	evaluator    *eval.Evaluator
	store        store.Store
	storeErr     error
	outputWriter func(text string) error
	noHistory    bool
	historyLimit int
}

// New creates a new lseq runtime with the given options.
func New(opts ...Option) (*Runtime, error) {
	r := &Runtime{}

	for _, opt := range opts {
		opt(r)
	}
	if r.storeErr != nil {
		return nil, r.storeErr
	}
	if r.noHistory {
		r.store = nil
	}

	evalOpts := []eval.Option{}
	if r.store != nil {
		evalOpts = append(evalOpts, eval.WithStore(r.store))
	}
	if r.outputWriter != nil {
		evalOpts = append(evalOpts, eval.WithOutputWriter(r.outputWriter))
	}
	if r.historyLimit > 0 {
		evalOpts = append(evalOpts, eval.WithHistoryLimit(r.historyLimit))
	}

	r.evaluator = eval.New(evalOpts...)
	return r, nil
}

// Eval evaluates one lseq command line and returns the result.
func (r *Runtime) Eval(input string) (string, error) {
	return r.evaluator.Eval(input)
}

// EvalReader evaluates lseq commands from a reader.
func (r *Runtime) EvalReader(reader io.Reader) (string, error) {
	return r.evaluator.EvalReader(reader)
}

// EvalFile evaluates an lseq script file.
func (r *Runtime) EvalFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return r.EvalReader(f)
}

// History returns up to limit recorded command lines, newest first.
// It returns nil without a configured history store.
func (r *Runtime) History(limit int) ([]string, error) {
	if r.store == nil {
		return nil, nil
	}
	entries, err := r.store.Recent(limit)
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Line
	}
	return lines, nil
}

// Close releases resources.
func (r *Runtime) Close() error {
	if r.store != nil {
		return r.store.Close()
	}
	return nil
}

// Store interface for custom history stores.
type Store = store.Store

// Entry is one recorded history line.
type Entry = store.Entry
