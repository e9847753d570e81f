// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package series implements the arithmetic-series list payload: a lazy,
// constant-space representation of a list whose elements form an
// arithmetic progression. Length and index queries are O(1); elements
// and the printed form are only produced when a caller genuinely needs
// them, and are cached until the descriptor mutates.
package series

import (
	"fmt"
	"strconv"
	"strings"

	"nickandperla.net/lseq/internal/value"
)

// progression is the capability set shared by the two domain variants:
// length, element access, and step, plus derivation of sliced and
// reversed progressions.
type progression interface {
	length() int64
	// elemAt boxes element i. Valid only for 0 <= i < length.
	elemAt(i int64) *value.Obj
	stepObj() *value.Obj
	startObj() *value.Obj
	endObj() *value.Obj
	// slice returns the progression covering elements [from, to] of the
	// receiver, with the same step.
	slice(from, to int64) progression
	// reversed returns the order-reversed progression: negated step,
	// swapped bounds, identical length.
	reversed() progression
	// appendElem appends element i's canonical printed form to dst.
	appendElem(dst []byte, i int64) []byte
}

// lengthInt computes the element count of an integer progression:
// (end-start)/step + 1 with truncating division. A zero step or a
// formally negative count yields zero, which callers canonicalize to
// the empty list.
func lengthInt(start, end, step int64) int64 {
	if step == 0 {
		return 0
	}
	n := (end-start)/step + 1
	if n < 0 {
		return 0
	}
	return n
}

// lengthReal is the real-domain analogue. The quotient is truncated
// toward zero; no correction is applied for floating round-off at the
// boundary.
func lengthReal(start, end, step float64) int64 {
	if step == 0 {
		return 0
	}
	n := int64((end - start + step) / step)
	if n < 0 {
		return 0
	}
	return n
}

// intProg is the integer-domain progression. Element arithmetic wraps
// like any other int64 arithmetic in the runtime.
type intProg struct {
	start, end, step int64
	len              int64
}

func (p intProg) length() int64 { return p.len }

func (p intProg) elemAt(i int64) *value.Obj {
	return value.NewInt(p.start + p.step*i)
}

func (p intProg) stepObj() *value.Obj  { return value.NewInt(p.step) }
func (p intProg) startObj() *value.Obj { return value.NewInt(p.start) }
func (p intProg) endObj() *value.Obj   { return value.NewInt(p.end) }

func (p intProg) slice(from, to int64) progression {
	start := p.start + p.step*from
	end := p.start + p.step*to
	return intProg{start: start, end: end, step: p.step, len: lengthInt(start, end, p.step)}
}

func (p intProg) reversed() progression {
	return intProg{
		start: p.start + p.step*(p.len-1),
		end:   p.start,
		step:  -p.step,
		len:   p.len,
	}
}

func (p intProg) appendElem(dst []byte, i int64) []byte {
	return strconv.AppendInt(dst, p.start+p.step*i, 10)
}

// realProg is the real-domain progression, computed in IEEE float64.
type realProg struct {
	start, end, step float64
	len              int64
}

func (p realProg) length() int64 { return p.len }

func (p realProg) elemAt(i int64) *value.Obj {
	return value.NewReal(p.start + p.step*float64(i))
}

func (p realProg) stepObj() *value.Obj  { return value.NewReal(p.step) }
func (p realProg) startObj() *value.Obj { return value.NewReal(p.start) }
func (p realProg) endObj() *value.Obj   { return value.NewReal(p.end) }

func (p realProg) slice(from, to int64) progression {
	start := p.start + p.step*float64(from)
	end := p.start + p.step*float64(to)
	return realProg{start: start, end: end, step: p.step, len: lengthReal(start, end, p.step)}
}

func (p realProg) reversed() progression {
	return realProg{
		start: p.start + p.step*float64(p.len-1),
		end:   p.start,
		step:  -p.step,
		len:   p.len,
	}
}

func (p realProg) appendElem(dst []byte, i int64) []byte {
	s := strconv.FormatFloat(p.start+p.step*float64(i), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return append(dst, s...)
}

// Series is the arithmetic-series descriptor. It satisfies the generic
// list contract in constant space; the element cache is pure derived
// state and is dropped whenever the progression changes.
type Series struct {
	prog  progression
	elems []*value.Obj // materialized element cache, nil until first use
}

func (s *Series) Kind() value.Kind { return value.KindList }

func (s *Series) Length() int64 { return s.prog.length() }

// Index returns the boxed element at i. With a materialized cache the
// cached box is returned; otherwise a fresh box is computed.
func (s *Series) Index(i int64) (*value.Obj, error) {
	if i < 0 || i >= s.prog.length() {
		return nil, value.Errorf(value.IndexOutOfRange, "index %d out of range", i)
	}
	if s.elems != nil {
		return s.elems[i], nil
	}
	return s.prog.elemAt(i), nil
}

// Start returns the boxed first bound of the descriptor.
func (s *Series) Start() *value.Obj { return s.prog.startObj() }

// End returns the boxed last bound of the descriptor.
func (s *Series) End() *value.Obj { return s.prog.endObj() }

// Step returns the boxed step of the descriptor.
func (s *Series) Step() *value.Obj { return s.prog.stepObj() }

// Slice narrows the descriptor to elements [from, to]. The indices have
// been clamped by the generic dispatch; the step is unchanged, so the
// result enumerates exactly the original elements in original order.
func (s *Series) Slice(from, to int64, inPlace bool) (*value.Obj, error) {
	p := s.prog.slice(from, to)
	if inPlace {
		s.clearElems()
		s.prog = p
		return nil, nil
	}
	return value.NewObj(&Series{prog: p}), nil
}

// Reverse negates the step and swaps the bounds. Applying it twice
// restores the original (start, end, step, length) values.
func (s *Series) Reverse(inPlace bool) (*value.Obj, error) {
	p := s.prog.reversed()
	if inPlace {
		s.clearElems()
		s.prog = p
		return nil, nil
	}
	return value.NewObj(&Series{prog: p}), nil
}

// Elements materializes the concrete element sequence, retaining each
// element in the cache. Repeated calls return the identical cached
// slice until a mutation invalidates it. An empty series yields nil
// without installing a cache.
func (s *Series) Elements() ([]*value.Obj, error) {
	if s.elems != nil {
		return s.elems, nil
	}
	n := s.prog.length()
	if n == 0 {
		return nil, nil
	}
	if n > value.MaxListLength {
		return nil, value.Errorf(value.AllocationFailure, "cannot materialize %d elements", n)
	}
	elems := make([]*value.Obj, n)
	for i := range elems {
		elems[i] = s.prog.elemAt(int64(i)).IncrRef()
	}
	s.elems = elems
	return elems, nil
}

// AppendString renders the canonical printed form: every element in its
// domain rendering, separated by single spaces. The output is
// byte-identical to printing the equivalent ordinary list. Pass one
// sizes the buffer, pass two fills it.
func (s *Series) AppendString(dst []byte) []byte {
	n := s.prog.length()
	if n == 0 {
		return dst
	}

	size := 0
	var scratch []byte
	for i := int64(0); i < n; i++ {
		scratch = s.prog.appendElem(scratch[:0], i)
		size += len(scratch) + 1
	}
	size-- // no separator after the final element

	buf := make([]byte, 0, size)
	for i := int64(0); i < n; i++ {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = s.prog.appendElem(buf, i)
	}
	return append(dst, buf...)
}

// Dup copies the descriptor fields only. The element cache is never
// carried over: a duplicate starts cold and re-materializes on demand,
// so two descriptors can never alias one cache array.
func (s *Series) Dup() value.Rep {
	return &Series{prog: s.prog}
}

// Free releases the cached element references.
func (s *Series) Free() {
	s.clearElems()
}

func (s *Series) clearElems() {
	for _, e := range s.elems {
		e.DecrRef()
	}
	s.elems = nil
}

// Is reports whether a value carries an arithmetic-series payload.
func Is(o *value.Obj) bool {
	_, ok := o.Rep().(*Series)
	return ok
}

// Step returns the step of an arithmetic-series value.
func Step(o *value.Obj) (*value.Obj, error) {
	s, ok := o.Rep().(*Series)
	if !ok {
		return nil, fmt.Errorf("value is not an arithmetic series")
	}
	return s.Step(), nil
}
