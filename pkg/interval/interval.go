package interval

import (
	"fmt"
	"math"
)

// Interval is a contiguous range of real values. Each side is either
// closed (the bound belongs to the interval) or open. A singleton is an
// Interval with low == high and both sides closed.
//
// The zero value is the singleton [0].
type Interval struct {
	low  float64
	high float64
	// openness is stored so that the zero value is closed
	lopen bool
	hopen bool
}

// New returns the interval between low and high with the given closure
// on each side.
func New(low, high float64, lclosed, hclosed bool) (Interval, error) {
	if err := validate(low, high, lclosed, hclosed); err != nil {
		return Interval{}, err
	}
	return mk(low, high, lclosed, hclosed), nil
}

// MustNew is like New but panics on invalid bounds.
func MustNew(low, high float64, lclosed, hclosed bool) Interval {
	i, err := New(low, high, lclosed, hclosed)
	if err != nil {
		panic(err)
	}
	return i
}

// Singleton returns the interval [x].
func Singleton(x float64) (Interval, error) { return New(x, x, true, true) }

// Closed returns [low, high].
func Closed(low, high float64) (Interval, error) { return New(low, high, true, true) }

// Open returns (low, high).
func Open(low, high float64) (Interval, error) { return New(low, high, false, false) }

// ClosedOpen returns [low, high).
func ClosedOpen(low, high float64) (Interval, error) { return New(low, high, true, false) }

// OpenClosed returns (low, high].
func OpenClosed(low, high float64) (Interval, error) { return New(low, high, false, true) }

func validate(low, high float64, lclosed, hclosed bool) error {
	switch {
	case math.IsNaN(low) || math.IsNaN(high):
		return fmt.Errorf("%w: NaN bound in %s", ErrInvalidBounds, format(low, high, lclosed, hclosed))
	case low > high:
		return fmt.Errorf("%w: low %s is greater than high %s", ErrInvalidBounds, formatFloat(low), formatFloat(high))
	case low == high && !(lclosed && hclosed):
		return fmt.Errorf("%w: %s is empty", ErrInvalidBounds, format(low, high, lclosed, hclosed))
	}
	return nil
}

// mk builds an interval without validation. Callers guarantee the bounds
// are valid.
func mk(low, high float64, lclosed, hclosed bool) Interval {
	return Interval{low: low, high: high, lopen: !lclosed, hopen: !hclosed}
}

// Low returns the lower bound of i.
func (i Interval) Low() float64 { return i.low }

// High returns the upper bound of i.
func (i Interval) High() float64 { return i.high }

func (i Interval) LClosed() bool { return !i.lopen }
func (i Interval) HClosed() bool { return !i.hopen }
func (i Interval) LOpen() bool   { return i.lopen }
func (i Interval) HOpen() bool   { return i.hopen }

// IsSingleton reports whether i holds exactly one point.
func (i Interval) IsSingleton() bool {
	return i.low == i.high && !i.lopen && !i.hopen
}

// IsValid reports whether i honors the interval invariants. Only values
// built outside of this package's constructors can be invalid.
func (i Interval) IsValid() bool {
	return validate(i.low, i.high, i.LClosed(), i.HClosed()) == nil
}

// Width returns the measure of i. Singletons have width zero.
func (i Interval) Width() float64 {
	if i.low == i.high {
		return 0
	}
	return i.high - i.low
}

// ContainsPoint reports whether x lies in i.
func (i Interval) ContainsPoint(x float64) bool {
	switch {
	case x < i.low || x > i.high:
		return false
	case i.low < x && x < i.high:
		return true
	case x == i.low:
		return !i.lopen
	case x == i.high:
		return !i.hopen
	default:
		// NaN
		return false
	}
}

// ContainsInterval reports whether every point of o lies in i.
func (i Interval) ContainsInterval(o Interval) bool {
	lowOK := i.low < o.low || (i.low == o.low && (!i.lopen || o.lopen))
	highOK := i.high > o.high || (i.high == o.high && (!i.hopen || o.hopen))
	return lowOK && highOK
}

// IsDisjoint reports whether i and o share no point.
func (i Interval) IsDisjoint(o Interval) bool {
	return i.lessInterval(o) || o.lessInterval(i)
}

// Equal reports structural equality of bounds and closure.
func (i Interval) Equal(o Interval) bool {
	return i.low == o.low && i.high == o.high &&
		i.lopen == o.lopen && i.hopen == o.hopen
}
