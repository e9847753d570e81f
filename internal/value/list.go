// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package value

import (
	"fmt"
	"math"
)

// MaxListLength is the maximum element count of any list value.
const MaxListLength = math.MaxInt32

// ListRep is the operation set every list representation implements.
// Specialized payloads (such as the arithmetic series) satisfy it
// without materializing their elements.
type ListRep interface {
	Rep
	// Length returns the element count.
	Length() int64
	// Index returns the boxed element at i. The reference is borrowed;
	// callers that keep it must IncrRef it. Out-of-range indices fail
	// with IndexOutOfRange, never a default value.
	Index(i int64) (*Obj, error)
	// Slice produces the sub-list [from, to], both in range with
	// from <= to. With inPlace false it returns a fresh Obj; with
	// inPlace true it rewrites the receiver and returns nil, leaving the
	// caller holding the same identity.
	Slice(from, to int64, inPlace bool) (*Obj, error)
	// Reverse produces the order-reversed list, with the same inPlace
	// contract as Slice.
	Reverse(inPlace bool) (*Obj, error)
	// Elements returns the materialized element sequence. References are
	// borrowed from the representation's cache.
	Elements() ([]*Obj, error)
}

// List is the ordinary, fully materialized list representation.
type List struct {
	elems []*Obj
}

// NewList creates a boxed list that retains each element.
func NewList(elems ...*Obj) *Obj {
	l := &List{elems: make([]*Obj, len(elems))}
	for i, e := range elems {
		l.elems[i] = e.IncrRef()
	}
	return NewObj(l)
}

// EmptyList returns the canonical empty list value. Zero-length lists
// are always represented this way, never by a specialized payload.
func EmptyList() *Obj {
	return NewObj(&List{})
}

func (l *List) Kind() Kind { return KindList }

func (l *List) Length() int64 { return int64(len(l.elems)) }

func (l *List) Index(i int64) (*Obj, error) {
	if i < 0 || i >= int64(len(l.elems)) {
		return nil, Errorf(IndexOutOfRange, "index %d out of range", i)
	}
	return l.elems[i], nil
}

func (l *List) Slice(from, to int64, inPlace bool) (*Obj, error) {
	if !inPlace {
		return NewList(l.elems[from : to+1]...), nil
	}
	kept := make([]*Obj, to-from+1)
	copy(kept, l.elems[from:to+1])
	for i, e := range l.elems {
		if int64(i) < from || int64(i) > to {
			e.DecrRef()
		}
	}
	l.elems = kept
	return nil, nil
}

func (l *List) Reverse(inPlace bool) (*Obj, error) {
	if !inPlace {
		rev := make([]*Obj, len(l.elems))
		for i, e := range l.elems {
			rev[len(l.elems)-1-i] = e
		}
		return NewList(rev...), nil
	}
	for i, j := 0, len(l.elems)-1; i < j; i, j = i+1, j-1 {
		l.elems[i], l.elems[j] = l.elems[j], l.elems[i]
	}
	return nil, nil
}

func (l *List) Elements() ([]*Obj, error) {
	return l.elems, nil
}

func (l *List) AppendString(dst []byte) []byte {
	for i, e := range l.elems {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = append(dst, e.String()...)
	}
	return dst
}

// Dup shares the elements; they are immutable boxes, so an ordinary
// list copy only needs new references.
func (l *List) Dup() Rep {
	elems := make([]*Obj, len(l.elems))
	for i, e := range l.elems {
		elems[i] = e.IncrRef()
	}
	return &List{elems: elems}
}

func (l *List) Free() {
	for _, e := range l.elems {
		e.DecrRef()
	}
	l.elems = nil
}

// listRep extracts the list contract from an Obj.
func listRep(o *Obj) (ListRep, error) {
	if rep, ok := o.rep.(ListRep); ok {
		return rep, nil
	}
	return nil, fmt.Errorf("value is not a list")
}

// ListLength returns the element count of a list value.
func ListLength(o *Obj) (int64, error) {
	rep, err := listRep(o)
	if err != nil {
		return 0, err
	}
	return rep.Length(), nil
}

// ListIndex returns the element of a list value at i.
func ListIndex(o *Obj, i int64) (*Obj, error) {
	rep, err := listRep(o)
	if err != nil {
		return nil, err
	}
	return rep.Index(i)
}

// ListSlice takes the sub-list [from, to] of a list value. Raw indices
// are clamped to the list bounds; an inverted range yields the canonical
// empty list. A shared value is left untouched and a fresh value is
// returned; an exclusive value is rewritten in place, dropping its
// cached string form, and keeps its identity.
func ListSlice(o *Obj, from, to int64) (*Obj, error) {
	rep, err := listRep(o)
	if err != nil {
		return nil, err
	}
	n := rep.Length()
	if from < 0 {
		from = 0
	}
	if to >= n {
		to = n - 1
	}
	if from > to {
		return EmptyList(), nil
	}
	if o.Shared() {
		return rep.Slice(from, to, false)
	}
	o.InvalidateString()
	if _, err := rep.Slice(from, to, true); err != nil {
		return nil, err
	}
	return o, nil
}

// ListReverse reverses a list value, with the same ownership discipline
// as ListSlice.
func ListReverse(o *Obj) (*Obj, error) {
	rep, err := listRep(o)
	if err != nil {
		return nil, err
	}
	if o.Shared() {
		return rep.Reverse(false)
	}
	o.InvalidateString()
	if _, err := rep.Reverse(true); err != nil {
		return nil, err
	}
	return o, nil
}

// ListElements bulk-materializes a list value.
func ListElements(o *Obj) ([]*Obj, error) {
	rep, err := listRep(o)
	if err != nil {
		return nil, err
	}
	return rep.Elements()
}
