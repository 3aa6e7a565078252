package interval

import "sort"

// Merge returns the minimal sorted list of pairwise disjoint intervals
// that covers the same points as in.
func Merge(in []Interval) []Interval {
	// Always work on a copy of in, to avoid aliasing slice memory in
	// the caller.
	switch len(in) {
	case 0:
		return nil
	case 1:
		return []Interval{in[0]}
	}
	rr := append(make([]Interval, 0, len(in)), in...)
	sort.Slice(rr, func(i, j int) bool { return Compare(rr[i], rr[j]) < 0 })

	out := make([]Interval, 1, len(rr))
	out[0] = rr[0]
	for _, r := range rr[1:] {
		prev := &out[len(out)-1]
		switch {
		case !joinable(*prev, r):
			// No overlap, and not touching at a held point.
			//
			//   prev       r
			// l------h  l-----h
			//
			//   prev  r
			// l-----)(-----h
			out = append(out, r)
		case prev.high < r.high:
			// Partial overlap or touching, extend prev.
			//
			//   prev
			// l------h
			//     l-----h
			//        r
			prev.high, prev.hopen = r.high, r.hopen
		case prev.high == r.high:
			// Same upper bound, the closed side wins.
			//
			//    prev
			// l-------)
			//     l---]
			//       r
			prev.hopen = prev.hopen && r.hopen
		default:
			// r entirely contained in prev, nothing to do.
			//
			//    prev
			// l--------h
			//  l-----h
			//     r
		}
	}
	return out
}

// MergeFixpoint computes the same result as Merge by combining every pair
// of candidates until no pair merges any more. It is quadratic per pass
// and kept as the reference reducer.
func MergeFixpoint(in []Interval) []Interval {
	pool := append([]Interval{}, in...)
	for merged := true; merged; {
		merged = false
	scan:
		for i := 0; i < len(pool); i++ {
			for j := i + 1; j < len(pool); j++ {
				u, ok := union(pool[i], pool[j])
				if !ok {
					continue
				}
				next := make([]Interval, 0, len(pool)-1)
				next = append(next, pool[:i]...)
				next = append(next, pool[i+1:j]...)
				next = append(next, pool[j+1:]...)
				pool = append(next, u)
				merged = true
				break scan
			}
		}
	}

	unique := make([]Interval, 0, len(pool))
	for _, r := range pool {
		dup := false
		for _, u := range unique {
			if u.Equal(r) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, r)
		}
	}
	sort.Slice(unique, func(i, j int) bool { return Compare(unique[i], unique[j]) < 0 })
	if len(unique) == 0 {
		return nil
	}
	return unique
}
