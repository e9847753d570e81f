// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package value implements the runtime's boxed value model: reference
// counted objects with a cached canonical string form and swappable
// representations, including the generic list contract that specialized
// list payloads plug into.
package value

import (
	"strconv"
	"strings"
)

// Kind tags a representation's domain.
type Kind int

const (
	KindInt Kind = iota
	KindReal
	KindList
)

// Rep is a concrete representation installed in an Obj.
type Rep interface {
	// Kind returns the representation's domain tag.
	Kind() Kind
	// AppendString appends the canonical printed form to dst.
	AppendString(dst []byte) []byte
	// Dup returns an independent copy. Derived caches are never copied;
	// a duplicate always starts cold.
	Dup() Rep
	// Free releases any resources held by the representation.
	Free()
}

// Obj is a reference-counted boxed value. An Obj is exclusive while its
// reference count is at most one and shared otherwise; in-place mutation
// of its representation is only legal while exclusive.
type Obj struct {
	refs int
	str  *string // cached canonical form, nil when invalid
	rep  Rep
}

// NewObj boxes a representation. The returned Obj has refcount zero,
// like every freshly created value.
func NewObj(rep Rep) *Obj {
	return &Obj{rep: rep}
}

// NewInt creates a boxed integer.
func NewInt(v int64) *Obj { return NewObj(Int(v)) }

// NewReal creates a boxed real.
func NewReal(v float64) *Obj { return NewObj(Real(v)) }

// IncrRef adds an owner reference and returns the Obj.
func (o *Obj) IncrRef() *Obj {
	o.refs++
	return o
}

// DecrRef drops an owner reference, freeing the representation when the
// last owner lets go.
func (o *Obj) DecrRef() {
	o.refs--
	if o.refs <= 0 {
		o.rep.Free()
	}
}

// Refs returns the current owner count.
func (o *Obj) Refs() int { return o.refs }

// Shared returns true when more than one owner holds the Obj, meaning
// in-place mutation is not permitted.
func (o *Obj) Shared() bool { return o.refs > 1 }

// Kind returns the domain tag of the current representation.
func (o *Obj) Kind() Kind { return o.rep.Kind() }

// Rep returns the current representation.
func (o *Obj) Rep() Rep { return o.rep }

// Duplicate returns an independent copy of the Obj with refcount zero.
// Neither the string cache nor any representation-level cache carries
// over; the duplicate recomputes both lazily.
func (o *Obj) Duplicate() *Obj {
	return &Obj{rep: o.rep.Dup()}
}

// InvalidateString drops the cached canonical form. Every in-place
// representation change must call this.
func (o *Obj) InvalidateString() { o.str = nil }

// HasString reports whether the canonical form is currently cached.
func (o *Obj) HasString() bool { return o.str != nil }

// String returns the canonical printed form, computing and caching it on
// first use.
func (o *Obj) String() string {
	if o.str != nil {
		return *o.str
	}
	s := string(o.rep.AppendString(nil))
	o.str = &s
	return s
}

// IntValue returns the int64 payload of an integer Obj.
func (o *Obj) IntValue() (int64, bool) {
	if v, ok := o.rep.(Int); ok {
		return int64(v), true
	}
	return 0, false
}

// RealValue returns the float64 payload of a real Obj.
func (o *Obj) RealValue() (float64, bool) {
	if v, ok := o.rep.(Real); ok {
		return float64(v), true
	}
	return 0, false
}

// Int is the integer scalar representation.
type Int int64

func (v Int) Kind() Kind { return KindInt }
func (v Int) Dup() Rep   { return v }
func (v Int) Free()      {}

func (v Int) AppendString(dst []byte) []byte {
	return strconv.AppendInt(dst, int64(v), 10)
}

// Real is the real scalar representation.
type Real float64

func (v Real) Kind() Kind { return KindReal }
func (v Real) Dup() Rep   { return v }
func (v Real) Free()      {}

// AppendString renders the shortest decimal form that round-trips,
// keeping a trailing ".0" on whole values so a real never prints as an
// integer.
func (v Real) AppendString(dst []byte) []byte {
	s := strconv.FormatFloat(float64(v), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return append(dst, s...)
}
