package interval

import "fmt"

// Bound is either a Point or an Interval. The set of implementations is
// closed to this package.
type Bound interface {
	fmt.Stringer
	bound()
}

// Point is a single real value used as a relation operand. As a member
// of a set it denotes the singleton [x].
type Point float64

func (Point) bound()    {}
func (Interval) bound() {}

func (p Point) String() string { return formatFloat(float64(p)) }

// AsInterval returns the interval denoted by b.
func AsInterval(b Bound) (Interval, error) {
	switch v := b.(type) {
	case Interval:
		if !v.IsValid() {
			return Interval{}, fmt.Errorf("%w: %s", ErrInvalidBounds, v)
		}
		return v, nil
	case Point:
		return Singleton(float64(v))
	default:
		panic(fmt.Sprintf("interval: unknown bound type %T", b))
	}
}

// Contains reports whether b lies entirely in i.
func (i Interval) Contains(b Bound) bool {
	switch v := b.(type) {
	case Interval:
		return i.ContainsInterval(v)
	case Point:
		return i.ContainsPoint(float64(v))
	default:
		panic(fmt.Sprintf("interval: unknown bound type %T", b))
	}
}

// Less reports whether i lies entirely before b.
//
//	..., 1) < [1, ...
//	..., 1) < (1, ...
//	..., 1] < (1, ...
//	..., 1] !< [1, ...
func (i Interval) Less(b Bound) bool {
	switch v := b.(type) {
	case Interval:
		return i.lessInterval(v)
	case Point:
		x := float64(v)
		return i.high < x || (i.high == x && i.hopen)
	default:
		panic(fmt.Sprintf("interval: unknown bound type %T", b))
	}
}

// Greater reports whether i lies entirely after b.
func (i Interval) Greater(b Bound) bool {
	switch v := b.(type) {
	case Interval:
		return v.lessInterval(i)
	case Point:
		x := float64(v)
		return i.low > x || (i.low == x && i.lopen)
	default:
		panic(fmt.Sprintf("interval: unknown bound type %T", b))
	}
}

func (i Interval) LessEq(b Bound) bool    { return i.Less(b) || i.equalBound(b) }
func (i Interval) GreaterEq(b Bound) bool { return i.Greater(b) || i.equalBound(b) }

func (i Interval) equalBound(b Bound) bool {
	switch v := b.(type) {
	case Interval:
		return i.Equal(v)
	case Point:
		return i.IsSingleton() && i.low == float64(v)
	default:
		panic(fmt.Sprintf("interval: unknown bound type %T", b))
	}
}

func (i Interval) lessInterval(o Interval) bool {
	switch {
	case i.high < o.low:
		return true
	case i.high > o.low:
		return false
	default:
		// touching: ordered unless both sides hold the shared point
		return i.hopen || o.lopen
	}
}

// Compare orders intervals by lower bound, closed before open, then by
// upper bound, open before closed. For disjoint intervals the result
// agrees with Less.
func Compare(a, b Interval) int {
	switch {
	case a.low < b.low:
		return -1
	case a.low > b.low:
		return 1
	case a.lopen != b.lopen:
		if a.lopen {
			return 1
		}
		return -1
	case a.high < b.high:
		return -1
	case a.high > b.high:
		return 1
	case a.hopen != b.hopen:
		if a.hopen {
			return -1
		}
		return 1
	}
	return 0
}
