package multiset

import (
	"math"

	"github.com/henderiw/intervalset/pkg/interval"
)

// Union returns the set of points in s or o.
func (s MultiSet) Union(o MultiSet) MultiSet {
	all := make([]interval.Interval, 0, len(s.members)+len(o.members))
	all = append(all, s.members...)
	all = append(all, o.members...)
	return FromIntervals(all...)
}

// Intersection returns the set of points in both s and o.
func (s MultiSet) Intersection(o MultiSet) MultiSet {
	return MultiSet{members: intersect(s.members, o.members)}
}

// Difference returns the set of points in s but not in o.
func (s MultiSet) Difference(o MultiSet) MultiSet {
	return MultiSet{members: difference(s.members, o.members)}
}

// SymmetricDifference returns the set of points in exactly one of s and o.
func (s MultiSet) SymmetricDifference(o MultiSet) MultiSet {
	return s.Difference(o).Union(o.Difference(s))
}

// Complement returns the points of the extended real line [-inf, inf]
// that are not in s.
func (s MultiSet) Complement() MultiSet {
	return MultiSet{members: complement(s.members)}
}

func intersect(a, b []interval.Interval) []interval.Interval {
	var out []interval.Interval
	for _, x := range a {
		for _, y := range b {
			if i, ok := interval.Intersection(x, y); ok {
				out = append(out, i)
			}
		}
	}
	return interval.Merge(out)
}

func difference(in, out []interval.Interval) []interval.Interval {
	if len(in) == 0 || len(out) == 0 {
		return interval.Merge(in)
	}
	return intersect(interval.Merge(in), complement(interval.Merge(out)))
}

// complement returns the gaps between the normalized members rr,
// including the gaps towards -inf and inf.
//
//	     rr[0]        rr[1]
//	   [-------)   (--------]
//	--)         [-]          (--
//	 gap        gap          gap
func complement(rr []interval.Interval) []interval.Interval {
	var out []interval.Interval
	low, lclosed := math.Inf(-1), true
	for _, r := range rr {
		out = appendGap(out, low, r.Low(), lclosed, r.LOpen())
		low, lclosed = r.High(), r.HOpen()
	}
	return appendGap(out, low, math.Inf(1), lclosed, true)
}

func appendGap(out []interval.Interval, low, high float64, lclosed, hclosed bool) []interval.Interval {
	switch {
	case low < high:
	case low == high && lclosed && hclosed:
	default:
		// nothing between the two members
		return out
	}
	return append(out, interval.MustNew(low, high, lclosed, hclosed))
}
