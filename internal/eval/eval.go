package eval

import (
	"fmt"
	"io"
	"strings"

	"nickandperla.net/lseq/internal/scanner"
	"nickandperla.net/lseq/internal/store"
	"nickandperla.net/lseq/internal/token"
)

// OutputWriter writes output (for the print builtin).
type OutputWriter func(text string) error

// Evaluator interprets lseq command lines against a namespace of
// reference-counted list values.
type Evaluator struct {
	namespace    *Namespace
	store        store.Store
	outputWriter OutputWriter
	historyLimit int // Limit for history queries (0 = all)
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithStore sets the session history store.
func WithStore(s store.Store) Option {
	return func(e *Evaluator) { e.store = s }
}

// WithOutputWriter sets the output writer for the print builtin.
func WithOutputWriter(w OutputWriter) Option {
	return func(e *Evaluator) { e.outputWriter = w }
}

// WithHistoryLimit caps how many entries the history builtin reports.
func WithHistoryLimit(n int) Option {
	return func(e *Evaluator) { e.historyLimit = n }
}

// New creates a new Evaluator with the given options.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		namespace: NewNamespace(),
		outputWriter: func(text string) error {
			fmt.Print(text)
			return nil
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Namespace returns the evaluator's variable namespace.
func (e *Evaluator) Namespace() *Namespace {
	return e.namespace
}

// Eval evaluates one command line and returns its result text.
// Successful non-empty commands are recorded in the session history.
func (e *Evaluator) Eval(line string) (string, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", nil
	}

	result, err := e.evalLine(scanner.NewFromString(trimmed))
	if err != nil {
		return "", err
	}

	if e.store != nil {
		if err := e.store.Append(trimmed); err != nil {
			return "", fmt.Errorf("recording history: %w", err)
		}
	}
	return result, nil
}

// EvalReader evaluates command lines from a reader, returning the last
// non-empty result.
func (e *Evaluator) EvalReader(r io.Reader) (string, error) {
	var last string
	if err := eachLine(r, func(line string) error {
		result, err := e.Eval(line)
		if err != nil {
			return err
		}
		if result != "" {
			last = result
		}
		return nil
	}); err != nil {
		return "", err
	}
	return last, nil
}

// evalLine dispatches the first word of a line to its builtin.
func (e *Evaluator) evalLine(scan *scanner.Scanner) (string, error) {
	item, err := scan.Next()
	if err != nil {
		return "", err
	}
	if item.Token != token.WORD {
		return "", fmt.Errorf("expected a command, got %q", item.Word)
	}

	if fn := getBuiltin(item.Word); fn != nil {
		result, err := fn(e, scan)
		if err != nil {
			return "", err
		}
		return result, nil
	}

	// A bare variable name prints its value.
	if o := e.namespace.Get(item.Word); o != nil {
		if err := expectEnd(scan); err != nil {
			return "", err
		}
		return o.String(), nil
	}

	return "", fmt.Errorf("unknown command or variable %q", item.Word)
}

// expectEnd fails if any tokens remain on the line.
func expectEnd(scan *scanner.Scanner) error {
	item, err := scan.Next()
	if err != nil {
		return err
	}
	if item.Token != token.EOF {
		return fmt.Errorf("unexpected argument %q", item.Word)
	}
	return nil
}

// eachLine invokes fn for each line of r.
func eachLine(r io.Reader, fn func(string) error) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	for _, line := range strings.Split(string(data), "\n") {
		if err := fn(line); err != nil {
			return err
		}
	}
	return nil
}
