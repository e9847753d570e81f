package series

import (
	"testing"

	"nickandperla.net/lseq/internal/value"
)

func mustBuild(t *testing.T, useReal bool, spec Spec) *value.Obj {
	t.Helper()
	o, err := FromSpec(useReal, spec)
	if err != nil {
		t.Fatalf("FromSpec failed: %v", err)
	}
	return o
}

func TestFromSpecDefaults(t *testing.T) {
	// Count only: 0 .. N-1.
	o := mustBuild(t, false, Spec{Length: value.NewInt(4)})
	if got := o.String(); got != "0 1 2 3" {
		t.Errorf("count form = %q", got)
	}

	// End only: start defaults to zero, step to one.
	o = mustBuild(t, false, Spec{End: value.NewInt(3)})
	if got := o.String(); got != "0 1 2 3" {
		t.Errorf("end form = %q", got)
	}

	// Step direction follows the bounds.
	o = mustBuild(t, false, Spec{Start: value.NewInt(5), End: value.NewInt(1)})
	if got := o.String(); got != "5 4 3 2 1" {
		t.Errorf("descending default step = %q", got)
	}
	o = mustBuild(t, false, Spec{Start: value.NewInt(1), End: value.NewInt(5)})
	if got := o.String(); got != "1 2 3 4 5" {
		t.Errorf("ascending default step = %q", got)
	}
}

func TestFromSpecDerivedEnd(t *testing.T) {
	o := mustBuild(t, false, Spec{
		Start:  value.NewInt(2),
		Step:   value.NewInt(3),
		Length: value.NewInt(4),
	})
	if got := o.String(); got != "2 5 8 11" {
		t.Errorf("derived end form = %q", got)
	}
	s := o.Rep().(*Series)
	if s.End().String() != "11" {
		t.Errorf("derived end = %q, want 11", s.End().String())
	}
}

func TestFromSpecRealDomain(t *testing.T) {
	o := mustBuild(t, true, Spec{
		Start: value.NewReal(0),
		End:   value.NewReal(1),
		Step:  value.NewReal(0.5),
	})
	if got := o.String(); got != "0.0 0.5 1.0" {
		t.Errorf("real series = %q", got)
	}

	// Integer literals are coerced into the real domain.
	o = mustBuild(t, true, Spec{
		Start: value.NewInt(1),
		End:   value.NewInt(2),
		Step:  value.NewReal(0.25),
	})
	if got := o.String(); got != "1.0 1.25 1.5 1.75 2.0" {
		t.Errorf("promoted series = %q", got)
	}
}

func TestFromSpecZeroStep(t *testing.T) {
	// Without an explicit length, a zero step degenerates to empty.
	o := mustBuild(t, false, Spec{
		Start: value.NewInt(1),
		End:   value.NewInt(5),
		Step:  value.NewInt(0),
	})
	if n, _ := value.ListLength(o); n != 0 {
		t.Errorf("zero step length = %d, want 0", n)
	}

	// With an explicit non-zero length the intent is contradictory.
	_, err := FromSpec(false, Spec{
		Start:  value.NewInt(1),
		Step:   value.NewInt(0),
		Length: value.NewInt(5),
	})
	if err == nil {
		t.Fatal("expected error for zero step with explicit length")
	}
	if kind, ok := value.KindOf(err); !ok || kind != value.AmbiguousConstruction {
		t.Errorf("expected AmbiguousConstruction, got %v", err)
	}
}

func TestFromSpecNegativeCount(t *testing.T) {
	o := mustBuild(t, false, Spec{Length: value.NewInt(-3)})
	if n, _ := value.ListLength(o); n != 0 {
		t.Errorf("negative count length = %d, want 0", n)
	}
}

func TestFromSpecCapacity(t *testing.T) {
	_, err := FromSpec(false, Spec{Length: value.NewInt(value.MaxListLength + 1)})
	if err == nil {
		t.Fatal("expected capacity error")
	}
	if kind, ok := value.KindOf(err); !ok || kind != value.CapacityError {
		t.Errorf("expected CapacityError, got %v", err)
	}

	// Derived lengths hit the same ceiling.
	_, err = FromSpec(false, Spec{End: value.NewInt(value.MaxListLength + 10)})
	if err == nil {
		t.Fatal("expected capacity error for derived length")
	}
	if kind, ok := value.KindOf(err); !ok || kind != value.CapacityError {
		t.Errorf("expected CapacityError, got %v", err)
	}
}

func TestSingleElementBounds(t *testing.T) {
	// Equal bounds produce the one-element series, per the length
	// formula with n = 1.
	o := mustBuild(t, false, Spec{Start: value.NewInt(10), End: value.NewInt(10)})
	if n, _ := value.ListLength(o); n != 1 {
		t.Fatalf("length = %d, want 1", n)
	}
	if got := o.String(); got != "10" {
		t.Errorf("render = %q, want 10", got)
	}
}
