package series

import (
	"math"
	"testing"

	"nickandperla.net/lseq/internal/value"
)

func TestRendering(t *testing.T) {
	cases := []struct {
		o    *value.Obj
		want string
	}{
		{NewInt(1, 5, 1, -1), "1 2 3 4 5"},
		{NewInt(5, 1, -1, -1), "5 4 3 2 1"},
		{NewInt(1, 10, 3, -1), "1 4 7 10"},
		{NewInt(10, 10, 1, -1), "10"},
		{NewReal(0, 1, 0.5, -1), "0.0 0.5 1.0"},
		{NewReal(1, 2, 0.25, -1), "1.0 1.25 1.5 1.75 2.0"},
	}
	for _, c := range cases {
		if got := c.o.String(); got != c.want {
			t.Errorf("render = %q, want %q", got, c.want)
		}
	}
}

func TestLengthFormula(t *testing.T) {
	// length(start, start+step*(n-1), step) == n for n >= 1
	cases := []struct {
		start, step, n int64
	}{
		{0, 1, 1},
		{0, 1, 100},
		{-7, 3, 13},
		{50, -4, 9},
		{10, 1, 1},
	}
	for _, c := range cases {
		end := c.start + c.step*(c.n-1)
		if got := lengthInt(c.start, end, c.step); got != c.n {
			t.Errorf("lengthInt(%d, %d, %d) = %d, want %d", c.start, end, c.step, got, c.n)
		}
	}

	if got := lengthInt(1, 5, 0); got != 0 {
		t.Errorf("zero step length = %d, want 0", got)
	}
	if got := lengthInt(5, 1, 1); got != 0 {
		t.Errorf("inverted bounds length = %d, want 0", got)
	}
	if got := lengthInt(1, 10, 4); got != 3 {
		t.Errorf("truncating length = %d, want 3", got)
	}
}

func TestIndex(t *testing.T) {
	o := NewInt(1, 10, 3, -1)

	for i, want := range []string{"1", "4", "7", "10"} {
		el, err := value.ListIndex(o, int64(i))
		if err != nil {
			t.Fatalf("index %d failed: %v", i, err)
		}
		if el.String() != want {
			t.Errorf("element %d = %q, want %q", i, el.String(), want)
		}
	}

	for _, i := range []int64{-1, 4, 100} {
		_, err := value.ListIndex(o, i)
		if err == nil {
			t.Fatalf("expected error for index %d", i)
		}
		if kind, ok := value.KindOf(err); !ok || kind != value.IndexOutOfRange {
			t.Errorf("index %d: expected IndexOutOfRange, got %v", i, err)
		}
	}
}

func TestElementOverflowWraps(t *testing.T) {
	o := NewInt(math.MaxInt64, math.MaxInt64, 1, 2)
	el, err := value.ListIndex(o, 1)
	if err != nil {
		t.Fatalf("index failed: %v", err)
	}
	if got, want := el.String(), "-9223372036854775808"; got != want {
		t.Errorf("wrapped element = %q, want %q", got, want)
	}
}

func TestConstantSpaceLength(t *testing.T) {
	// A descriptor far past the materialization cap still answers
	// length and index queries.
	o := NewInt(0, 1<<33, 1, -1)
	n, err := value.ListLength(o)
	if err != nil {
		t.Fatalf("ListLength failed: %v", err)
	}
	if n != (1<<33)+1 {
		t.Errorf("length = %d, want %d", n, int64(1<<33)+1)
	}

	_, err = value.ListElements(o)
	if err == nil {
		t.Fatal("expected materialization failure")
	}
	if kind, ok := value.KindOf(err); !ok || kind != value.AllocationFailure {
		t.Errorf("expected AllocationFailure, got %v", err)
	}
}

func TestMaterializationCache(t *testing.T) {
	o := NewInt(1, 5, 1, -1)
	before := o.String()

	elems, err := value.ListElements(o)
	if err != nil {
		t.Fatalf("ListElements failed: %v", err)
	}
	if len(elems) != 5 {
		t.Fatalf("got %d elements, want 5", len(elems))
	}

	again, err := value.ListElements(o)
	if err != nil {
		t.Fatalf("second ListElements failed: %v", err)
	}
	if &elems[0] != &again[0] {
		t.Error("repeated materialization should return the cached slice")
	}

	// Index serves from the cache once it exists.
	el, err := value.ListIndex(o, 2)
	if err != nil {
		t.Fatalf("ListIndex failed: %v", err)
	}
	if el != elems[2] {
		t.Error("index should return the cached element")
	}

	if after := o.String(); after != before {
		t.Errorf("render changed across materialization: %q vs %q", before, after)
	}
}

func TestEmptySeriesHasNoCache(t *testing.T) {
	o := NewInt(5, 1, 1, -1)
	if Is(o) {
		t.Error("zero-length construction should yield the canonical empty list")
	}
	if got := o.String(); got != "" {
		t.Errorf("empty render = %q", got)
	}
	elems, err := value.ListElements(o)
	if err != nil || elems != nil {
		t.Errorf("empty elements = %v, %v", elems, err)
	}
}

func TestSliceKeepsStep(t *testing.T) {
	o := NewInt(1, 19, 2, -1).IncrRef()

	res, err := value.ListSlice(o, 2, 5)
	if err != nil {
		t.Fatalf("ListSlice failed: %v", err)
	}
	if res != o {
		t.Error("exclusive slice should keep identity")
	}
	if !Is(res) {
		t.Fatal("slice of a series should stay a series")
	}
	if got := res.String(); got != "5 7 9 11" {
		t.Errorf("sliced render = %q", got)
	}
	st, err := Step(res)
	if err != nil || st.String() != "2" {
		t.Errorf("step after slice = %v, %v", st, err)
	}

	// Full-range slice is the identity.
	full := NewInt(1, 5, 1, -1).IncrRef()
	res, err = value.ListSlice(full, 0, 4)
	if err != nil {
		t.Fatalf("ListSlice failed: %v", err)
	}
	if res.String() != "1 2 3 4 5" {
		t.Errorf("full-range slice = %q", res.String())
	}
}

func TestSliceSharedSeries(t *testing.T) {
	o := NewInt(0, 9, 1, -1)
	o.IncrRef()
	o.IncrRef()

	res, err := value.ListSlice(o, 2, 5)
	if err != nil {
		t.Fatalf("ListSlice failed: %v", err)
	}
	if res == o {
		t.Error("shared slice should produce a fresh value")
	}
	if got := o.String(); got != "0 1 2 3 4 5 6 7 8 9" {
		t.Errorf("shared original changed: %q", got)
	}
	if got := res.String(); got != "2 3 4 5" {
		t.Errorf("sliced render = %q", got)
	}
}

func TestReverseInvolution(t *testing.T) {
	o := NewInt(1, 10, 3, -1).IncrRef()
	s := o.Rep().(*Series)

	if _, err := value.ListReverse(o); err != nil {
		t.Fatalf("ListReverse failed: %v", err)
	}
	if got := o.String(); got != "10 7 4 1" {
		t.Errorf("reversed render = %q", got)
	}
	if s.Step().String() != "-3" {
		t.Errorf("reversed step = %q, want -3", s.Step().String())
	}

	if _, err := value.ListReverse(o); err != nil {
		t.Fatalf("second ListReverse failed: %v", err)
	}
	if s.Start().String() != "1" || s.End().String() != "10" || s.Step().String() != "3" {
		t.Errorf("double reverse did not restore descriptor: start=%s end=%s step=%s",
			s.Start(), s.End(), s.Step())
	}
	if n := s.Length(); n != 4 {
		t.Errorf("double reverse length = %d, want 4", n)
	}
}

func TestInPlaceMutationDropsCaches(t *testing.T) {
	o := NewInt(0, 4, 1, -1).IncrRef()
	s := o.Rep().(*Series)

	if _, err := s.Elements(); err != nil {
		t.Fatalf("Elements failed: %v", err)
	}
	_ = o.String()

	if _, err := value.ListReverse(o); err != nil {
		t.Fatalf("ListReverse failed: %v", err)
	}
	if s.elems != nil {
		t.Error("in-place reverse should drop the element cache")
	}
	if o.HasString() {
		t.Error("in-place reverse should drop the string cache")
	}
	el, err := s.Index(0)
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	if el.String() != "4" {
		t.Errorf("first element after reverse = %q, want 4", el.String())
	}
}

func TestDuplicateStartsCold(t *testing.T) {
	o := NewInt(1, 3, 1, -1).IncrRef()
	s := o.Rep().(*Series)
	if _, err := s.Elements(); err != nil {
		t.Fatalf("Elements failed: %v", err)
	}
	_ = o.String()

	dup := o.Duplicate()
	ds := dup.Rep().(*Series)
	if ds.elems != nil {
		t.Error("duplicate should not inherit the element cache")
	}
	if dup.HasString() {
		t.Error("duplicate should not inherit the string cache")
	}
	if dup.String() != o.String() {
		t.Errorf("duplicate renders %q, original %q", dup.String(), o.String())
	}
}
