package value

import "testing"

func TestRefCounting(t *testing.T) {
	o := NewInt(7)
	if o.Refs() != 0 {
		t.Errorf("fresh value refs = %d, want 0", o.Refs())
	}
	if o.Shared() {
		t.Error("fresh value should not be shared")
	}

	o.IncrRef()
	if o.Shared() {
		t.Error("singly held value should not be shared")
	}

	o.IncrRef()
	if !o.Shared() {
		t.Error("doubly held value should be shared")
	}

	o.DecrRef()
	if o.Shared() {
		t.Error("value should be exclusive again after release")
	}
}

func TestStringCache(t *testing.T) {
	o := NewInt(42)
	if o.HasString() {
		t.Error("fresh value should have no cached string")
	}
	if got := o.String(); got != "42" {
		t.Errorf("String = %q, want 42", got)
	}
	if !o.HasString() {
		t.Error("String should install the cache")
	}

	o.InvalidateString()
	if o.HasString() {
		t.Error("InvalidateString should drop the cache")
	}
}

func TestScalarRendering(t *testing.T) {
	cases := []struct {
		o    *Obj
		want string
	}{
		{NewInt(0), "0"},
		{NewInt(-17), "-17"},
		{NewReal(0.5), "0.5"},
		{NewReal(1), "1.0"},
		{NewReal(-3), "-3.0"},
		{NewReal(1e21), "1e+21"},
	}
	for _, c := range cases {
		if got := c.o.String(); got != c.want {
			t.Errorf("String = %q, want %q", got, c.want)
		}
	}
}

func TestDuplicateStartsCold(t *testing.T) {
	o := NewList(NewInt(1), NewInt(2))
	o.IncrRef()
	_ = o.String()

	dup := o.Duplicate()
	if dup.Refs() != 0 {
		t.Errorf("duplicate refs = %d, want 0", dup.Refs())
	}
	if dup.HasString() {
		t.Error("duplicate should not inherit the string cache")
	}
	if dup.String() != o.String() {
		t.Errorf("duplicate renders %q, original %q", dup.String(), o.String())
	}
}

func TestErrorKinds(t *testing.T) {
	err := Errorf(IndexOutOfRange, "index %d out of range", 9)
	kind, ok := KindOf(err)
	if !ok || kind != IndexOutOfRange {
		t.Errorf("KindOf = %v, %v, want IndexOutOfRange", kind, ok)
	}
	if err.Error() != "index 9 out of range" {
		t.Errorf("Error = %q", err.Error())
	}
	if _, ok := KindOf(nil); ok {
		t.Error("KindOf(nil) should not report a kind")
	}
}
