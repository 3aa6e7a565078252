package multiset

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/intervalset/pkg/interval"
	"github.com/stretchr/testify/assert"
)

func TestSetAlgebra(t *testing.T) {
	cases := map[string]struct {
		a, b                []string
		union, intersection string
		difference, symdiff string
	}{
		"Overlap": {
			a:            []string{"[0, 2]"},
			b:            []string{"(1, 3)"},
			union:        "{[0, 3)}",
			intersection: "{(1, 2]}",
			difference:   "{[0, 1]}",
			symdiff:      "{[0, 1], (2, 3)}",
		},
		"Disjoint": {
			a:            []string{"[0, 1)"},
			b:            []string{"(1, 2]"},
			union:        "{[0, 1), (1, 2]}",
			intersection: "{}",
			difference:   "{[0, 1)}",
			symdiff:      "{[0, 1), (1, 2]}",
		},
		"Equal": {
			a:            []string{"(0, 1)"},
			b:            []string{"(0, 1)"},
			union:        "{(0, 1)}",
			intersection: "{(0, 1)}",
			difference:   "{}",
			symdiff:      "{}",
		},
		"Nested": {
			a:            []string{"[0, 10]"},
			b:            []string{"(2, 3)", "5"},
			union:        "{[0, 10]}",
			intersection: "{(2, 3), [5]}",
			difference:   "{[0, 2], [3, 5), (5, 10]}",
			symdiff:      "{[0, 2], [3, 5), (5, 10]}",
		},
		"Multiple": {
			a:            []string{"[0, 2]", "[4, 6]"},
			b:            []string{"[1, 5]"},
			union:        "{[0, 6]}",
			intersection: "{[1, 2], [4, 5]}",
			difference:   "{[0, 1), (5, 6]}",
			symdiff:      "{[0, 1), (2, 4), (5, 6]}",
		},
		"Empty": {
			a:            nil,
			b:            []string{"[1, 5]"},
			union:        "{[1, 5]}",
			intersection: "{}",
			difference:   "{}",
			symdiff:      "{[1, 5]}",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			a, b := MustParse(tc.a...), MustParse(tc.b...)
			assert.Equal(t, tc.union, a.Union(b).String())
			assert.Equal(t, tc.union, b.Union(a).String())
			assert.Equal(t, tc.intersection, a.Intersection(b).String())
			assert.Equal(t, tc.intersection, b.Intersection(a).String())
			assert.Equal(t, tc.difference, a.Difference(b).String())
			assert.Equal(t, tc.symdiff, a.SymmetricDifference(b).String())
			assert.Equal(t, tc.symdiff, b.SymmetricDifference(a).String())
		})
	}
}

func TestComplement(t *testing.T) {
	cases := map[string]struct {
		in       []string
		expected string
	}{
		"Empty":     {in: nil, expected: "{[-inf, inf]}"},
		"Closed":    {in: []string{"[0, 1]"}, expected: "{[-inf, 0), (1, inf]}"},
		"Open":      {in: []string{"(0, 1)"}, expected: "{[-inf, 0], [1, inf]}"},
		"Point":     {in: []string{"0"}, expected: "{[-inf, 0), (0, inf]}"},
		"Gap":       {in: []string{"[0, 1)", "(1, 2]"}, expected: "{[-inf, 0), [1], (2, inf]}"},
		"RealLine":  {in: []string{"(-inf, inf)"}, expected: "{[-inf], [inf]}"},
		"Extended":  {in: []string{"[-inf, inf]"}, expected: "{}"},
		"LowerHalf": {in: []string{"[-inf, 0]"}, expected: "{(0, inf]}"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := MustParse(tc.in...)
			c := s.Complement()
			assert.Equal(t, tc.expected, c.String())
			assert.True(t, c.Complement().Equal(s), "double complement of %s is %s", s, c.Complement())
			assert.True(t, s.IsDisjoint(c))
			assert.Equal(t, "{[-inf, inf]}", s.Union(c).String())
		})
	}
}

func randomSet(r *rand.Rand) MultiSet {
	var ivs []interval.Interval
	for n := r.Intn(5); n > 0; n-- {
		low := float64(r.Intn(10))
		high := low + float64(r.Intn(4))
		if low == high {
			ivs = append(ivs, interval.MustNew(low, high, true, true))
			continue
		}
		ivs = append(ivs, interval.MustNew(low, high, r.Intn(2) == 0, r.Intn(2) == 0))
	}
	return FromIntervals(ivs...)
}

func TestSetAlgebraIdentities(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for n := 0; n < 300; n++ {
		a, b := randomSet(r), randomSet(r)
		// A = (A - B) ∪ (A ∩ B)
		if diff := cmp.Diff(a, a.Difference(b).Union(a.Intersection(b))); diff != "" {
			t.Fatalf("%s, %s: -want, +got:\n%s", a, b, diff)
		}
		// A - B = A ∩ ~B
		if diff := cmp.Diff(a.Intersection(b.Complement()), a.Difference(b)); diff != "" {
			t.Fatalf("%s, %s: -want, +got:\n%s", a, b, diff)
		}
		// ~(A ∪ B) = ~A ∩ ~B
		if diff := cmp.Diff(a.Complement().Intersection(b.Complement()), a.Union(b).Complement()); diff != "" {
			t.Fatalf("%s, %s: -want, +got:\n%s", a, b, diff)
		}
		assert.True(t, a.Union(b).ContainsSet(a))
		assert.True(t, a.ContainsSet(a.Intersection(b)))
		assert.True(t, a.Difference(b).IsDisjoint(b))
		assert.Equal(t, a.IsDisjoint(b), b.IsDisjoint(a))
		for _, x := range []float64{0, 0.5, 1, 2.5, 3, 7, 9, 12} {
			p := interval.Point(x)
			assert.Equal(t, a.Contains(p) || b.Contains(p), a.Union(b).Contains(p))
			assert.Equal(t, a.Contains(p) && b.Contains(p), a.Intersection(b).Contains(p))
			assert.Equal(t, a.Contains(p) != b.Contains(p), a.SymmetricDifference(b).Contains(p))
		}
	}
}
