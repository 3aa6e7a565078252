package settable

type Iterator struct {
	current int
	keys    []string
	table   map[string]Entry
}

func (r *Iterator) Value() Entry {
	return r.table[r.keys[r.current]]
}

func (r *Iterator) Name() string {
	return r.keys[r.current]
}

func (r *Iterator) Next() bool {
	r.current++
	return r.current < len(r.keys)
}
