package multiset

import (
	"strings"

	"github.com/henderiw/intervalset/pkg/interval"
)

// MultiSet is a subset of the real line made of intervals.
//
// The zero value is the empty set. A MultiSet is safe for concurrent
// reads; Add and Remove need external synchronization.
type MultiSet struct {
	// members is the set of intervals that belong to this MultiSet. The
	// intervals are normalized by interval.Merge, meaning they are a
	// sorted, minimal representation (no overlapping intervals, no
	// intervals touching at a held point). The implementation of the
	// methods relies on this property.
	members []interval.Interval
}

// New returns the set of all points in items.
func New(items ...interval.Bound) (MultiSet, error) {
	var b Builder
	for _, item := range items {
		b.Add(item)
	}
	s, err := b.Set()
	if err != nil {
		return MultiSet{}, err
	}
	return s, nil
}

// FromIntervals returns the set covered by ivs.
func FromIntervals(ivs ...interval.Interval) MultiSet {
	return MultiSet{members: interval.Merge(ivs)}
}

// Parse returns the set of all points in notations. Each notation is an
// interval or a bare number.
func Parse(notations ...string) (MultiSet, error) {
	var b Builder
	for _, n := range notations {
		b.AddNotation(n)
	}
	s, err := b.Set()
	if err != nil {
		return MultiSet{}, err
	}
	return s, nil
}

// MustParse is like Parse but panics on error.
func MustParse(notations ...string) MultiSet {
	s, err := Parse(notations...)
	if err != nil {
		panic(err)
	}
	return s
}

// Members returns the minimal sorted list of intervals that covers s.
func (s MultiSet) Members() []interval.Interval {
	return append([]interval.Interval{}, s.members...)
}

func (s MultiSet) Len() int      { return len(s.members) }
func (s MultiSet) IsEmpty() bool { return len(s.members) == 0 }

// Extent returns the smallest interval covering s. ok is false for the
// empty set.
func (s MultiSet) Extent() (interval.Interval, bool) {
	if s.IsEmpty() {
		return interval.Interval{}, false
	}
	first, last := s.members[0], s.members[len(s.members)-1]
	return interval.MustNew(first.Low(), last.High(), first.LClosed(), last.HClosed()), true
}

// Contains reports whether b lies entirely in s.
func (s MultiSet) Contains(b interval.Bound) bool {
	for _, m := range s.members {
		if m.Contains(b) {
			return true
		}
	}
	return false
}

// ContainsSet reports whether every point of o lies in s.
func (s MultiSet) ContainsSet(o MultiSet) bool {
	for _, om := range o.members {
		if !s.Contains(om) {
			return false
		}
	}
	return true
}

// IsDisjoint reports whether s and o share no point.
func (s MultiSet) IsDisjoint(o MultiSet) bool {
	for _, a := range s.members {
		for _, b := range o.members {
			if !a.IsDisjoint(b) {
				return false
			}
		}
	}
	return true
}

// Size returns the total measure of s.
func (s MultiSet) Size() float64 {
	var size float64
	for _, m := range s.members {
		size += m.Width()
	}
	return size
}

// Equal reports whether s and o have the same members.
func (s MultiSet) Equal(o MultiSet) bool {
	if len(s.members) != len(o.members) {
		return false
	}
	for i := range s.members {
		if !s.members[i].Equal(o.members[i]) {
			return false
		}
	}
	return true
}

// Less reports whether every member of s lies before every member of o.
// It is false when either set is empty.
func (s MultiSet) Less(o MultiSet) bool {
	if s.IsEmpty() || o.IsEmpty() {
		return false
	}
	return s.members[len(s.members)-1].Less(o.members[0])
}

func (s MultiSet) Greater(o MultiSet) bool   { return o.Less(s) }
func (s MultiSet) LessEq(o MultiSet) bool    { return s.Less(o) || s.Equal(o) }
func (s MultiSet) GreaterEq(o MultiSet) bool { return s.Greater(o) || s.Equal(o) }

// LessThan reports whether every member of s lies before b.
func (s MultiSet) LessThan(b interval.Bound) bool {
	if s.IsEmpty() {
		return false
	}
	return s.members[len(s.members)-1].Less(b)
}

// GreaterThan reports whether every member of s lies after b.
func (s MultiSet) GreaterThan(b interval.Bound) bool {
	if s.IsEmpty() {
		return false
	}
	return s.members[0].Greater(b)
}

// Add adds every point of b to s.
func (s *MultiSet) Add(b interval.Bound) error {
	i, err := interval.AsInterval(b)
	if err != nil {
		return err
	}
	s.members = interval.Merge(append([]interval.Interval{i}, s.members...))
	return nil
}

// Remove removes every point of b from s.
func (s *MultiSet) Remove(b interval.Bound) error {
	i, err := interval.AsInterval(b)
	if err != nil {
		return err
	}
	s.members = difference(s.members, []interval.Interval{i})
	return nil
}

func (s MultiSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, m := range s.members {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteByte('}')
	return b.String()
}
