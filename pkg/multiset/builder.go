package multiset

import (
	"errors"
	"fmt"

	"github.com/henderiw/intervalset/pkg/interval"
)

// Builder accumulates additions and removals and produces a MultiSet.
// Invalid inputs are skipped and reported by Set.
//
// The zero value is ready to use.
type Builder struct {
	in   []interval.Interval
	out  []interval.Interval
	errs error
}

// Add adds all points of b to the builder.
func (s *Builder) Add(b interval.Bound) {
	i, err := interval.AsInterval(b)
	if err != nil {
		s.errs = errors.Join(s.errs, fmt.Errorf("add(%v): %w", b, err))
		return
	}
	if len(s.out) > 0 {
		s.normalize()
	}
	s.in = append(s.in, i)
}

// AddNotation parses n and adds its points to the builder.
func (s *Builder) AddNotation(n string) {
	i, err := interval.Parse(n)
	if err != nil {
		s.errs = errors.Join(s.errs, fmt.Errorf("add(%q): %w", n, err))
		return
	}
	s.Add(i)
}

// Remove removes all points of b from the builder. Points added after
// the removal are kept.
func (s *Builder) Remove(b interval.Bound) {
	i, err := interval.AsInterval(b)
	if err != nil {
		s.errs = errors.Join(s.errs, fmt.Errorf("remove(%v): %w", b, err))
		return
	}
	s.out = append(s.out, i)
}

// RemoveNotation parses n and removes its points from the builder.
func (s *Builder) RemoveNotation(n string) {
	i, err := interval.Parse(n)
	if err != nil {
		s.errs = errors.Join(s.errs, fmt.Errorf("remove(%q): %w", n, err))
		return
	}
	s.Remove(i)
}

// AddSet adds all points in m to the builder.
func (s *Builder) AddSet(m MultiSet) {
	for _, r := range m.members {
		s.Add(r)
	}
}

// RemoveSet removes all points in m from the builder.
func (s *Builder) RemoveSet(m MultiSet) {
	for _, r := range m.members {
		s.Remove(r)
	}
}

// normalize normalizes s: s.in becomes the minimal sorted list of
// intervals required to describe s, and s.out becomes empty.
func (s *Builder) normalize() {
	s.in = difference(s.in, s.out)
	s.out = nil
}

// Set returns the set built so far, along with the joined errors of
// every invalid input. The builder keeps its contents and can be used
// further; the recorded errors are cleared.
func (s *Builder) Set() (MultiSet, error) {
	s.normalize()
	m := MultiSet{
		members: append([]interval.Interval{}, s.in...),
	}
	errs := s.errs
	s.errs = nil
	return m, errs
}
