package series

import (
	"nickandperla.net/lseq/internal/value"
)

// Spec is a partial series specification. Nil fields are derived from
// the given ones; the domain flag decides which arithmetic the resolved
// fields use.
type Spec struct {
	Start  *value.Obj
	End    *value.Obj
	Step   *value.Obj
	Length *value.Obj
}

// NewInt creates an integer series from fully resolved fields. A
// negative len asks for the length to be computed from the bounds. A
// resolved length of zero or less yields the canonical empty list.
func NewInt(start, end, step, len int64) *value.Obj {
	length := len
	if length < 0 {
		length = lengthInt(start, end, step)
	}
	if length <= 0 {
		return value.EmptyList()
	}
	return value.NewObj(&Series{prog: intProg{start: start, end: end, step: step, len: length}})
}

// NewReal is the real-domain analogue of NewInt.
func NewReal(start, end, step float64, len int64) *value.Obj {
	length := len
	if length < 0 {
		length = lengthReal(start, end, step)
	}
	if length <= 0 {
		return value.EmptyList()
	}
	return value.NewObj(&Series{prog: realProg{start: start, end: end, step: step, len: length}})
}

// FromSpec builds a canonical series value from a partial
// specification. Resolution order: missing start defaults to the
// domain's zero; missing step defaults by bound direction; missing
// length is derived from the bounds; missing end is derived from start,
// step and length. The result is the canonical empty list when the
// resolved length is zero or less, and a CapacityError when it exceeds
// the host's maximum list size. An explicit zero step is only valid
// without an explicit non-zero length; the combination is rejected as
// AmbiguousConstruction rather than guessing intent.
func FromSpec(useReal bool, spec Spec) (*value.Obj, error) {
	var (
		start, end, step, length int64
		dstart, dend, dstep      float64
	)

	if spec.Start != nil {
		start, dstart = numArg(useReal, spec.Start)
	}

	if spec.Length != nil {
		length, _ = numArg(false, spec.Length)
		if length < 0 {
			length = 0
		}
	}

	if spec.Step != nil {
		step, dstep = numArg(useReal, spec.Step)
		if dstep == 0 && step == 0 {
			if spec.Length != nil && length != 0 {
				return nil, value.Errorf(value.AmbiguousConstruction,
					"zero step is ambiguous with an explicit length of %d", length)
			}
			return value.EmptyList(), nil
		}
	}

	if spec.End != nil {
		end, dend = numArg(useReal, spec.End)
	}

	if spec.End != nil {
		if spec.Step == nil {
			if useReal {
				if dstart < dend {
					dstep = 1
				} else {
					dstep = -1
				}
				step = int64(dstep)
			} else {
				if start < end {
					step = 1
				} else {
					step = -1
				}
				dstep = float64(step)
			}
		}
		if spec.Length == nil {
			if useReal {
				length = lengthReal(dstart, dend, dstep)
			} else {
				length = lengthInt(start, end, step)
			}
		}
	} else {
		if spec.Step == nil {
			step, dstep = 1, 1
		}
		if useReal {
			dend = dstart + dstep*float64(length-1)
		} else {
			end = start + step*(length-1)
		}
	}

	if length > value.MaxListLength {
		return nil, value.Errorf(value.CapacityError, "max length of a list exceeded")
	}

	if useReal {
		return NewReal(dstart, dend, dstep, length), nil
	}
	return NewInt(start, end, step, length), nil
}

// numArg coerces a pre-classified numeric value into the requested
// domain, returning both renderings so the caller can pick.
func numArg(useReal bool, o *value.Obj) (int64, float64) {
	if v, ok := o.IntValue(); ok {
		return v, float64(v)
	}
	if f, ok := o.RealValue(); ok {
		if useReal {
			return int64(f), f
		}
		return int64(f), float64(int64(f))
	}
	return 0, 0
}
