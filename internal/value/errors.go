// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package value

import (
	"errors"
	"fmt"
)

// ErrKind classifies a structured runtime failure.
type ErrKind int

const (
	// CapacityError means a resolved length exceeds MaxListLength.
	CapacityError ErrKind = iota
	// IndexOutOfRange means an index query fell outside [0, length).
	IndexOutOfRange
	// AllocationFailure means a materialization buffer could not be obtained.
	AllocationFailure
	// AmbiguousConstruction means a series was specified with an explicit
	// zero step and an explicit non-zero length.
	AmbiguousConstruction
)

// String returns the kind's name.
func (k ErrKind) String() string {
	switch k {
	case CapacityError:
		return "CapacityError"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	case AllocationFailure:
		return "AllocationFailure"
	case AmbiguousConstruction:
		return "AmbiguousConstruction"
	}
	return "UnknownError"
}

// Error is a structured failure: a kind plus a message. All kinds are
// recoverable by the caller; the runtime never panics for them.
type Error struct {
	Kind ErrKind
	Msg  string
}

// Errorf creates a structured error with a formatted message.
func Errorf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string { return e.Msg }

// KindOf extracts the structured kind from an error chain. The second
// return is false for unstructured errors.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
