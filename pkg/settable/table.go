package settable

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/henderiw/intervalset/pkg/interval"
	"github.com/henderiw/intervalset/pkg/multiset"
	"k8s.io/apimachinery/pkg/labels"
)

// Table is a registry of named interval sets, each carrying labels.
// It is safe for concurrent use.
type Table interface {
	Get(name string) (Entry, error)
	Claim(name string, s multiset.MultiSet, l labels.Set) error
	Update(name string, s multiset.MultiSet) error
	Release(name string) error

	Iterate() *Iterator

	Count() int
	Has(name string) bool

	GetAll() map[string]multiset.MultiSet
	GetByLabel(selector labels.Selector) map[string]multiset.MultiSet
	UnionByLabel(selector labels.Selector) multiset.MultiSet
	IntersectionByLabel(selector labels.Selector) multiset.MultiSet
	Containing(b interval.Bound) []string
}

type ValidationFn func(name string, s multiset.MultiSet) error

func NewTable(initEntries []Entry, v ValidationFn) (Table, error) {
	r := &table{
		m:          new(sync.RWMutex),
		table:      map[string]Entry{},
		validateFn: v,
	}

	var errm error
	for _, e := range initEntries {
		if err := r.add(e, true); err != nil {
			errm = errors.Join(errm, err)
		}
	}

	return r, errm
}

type table struct {
	m          *sync.RWMutex
	table      map[string]Entry
	validateFn ValidationFn
}

func (r *table) validate(name string, s multiset.MultiSet, init bool) error {
	if name == "" {
		return fmt.Errorf("entry name cannot be empty")
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(name, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *table) Get(name string) (Entry, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, ok := r.table[name]
	if !ok {
		return nil, fmt.Errorf("no match found for: %s", name)
	}
	return e, nil
}

func (r *table) Claim(name string, s multiset.MultiSet, l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(NewEntry(name, s, l), false)
}

func (r *table) Update(name string, s multiset.MultiSet) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.update(name, s)
}

func (r *table) Release(name string) error {
	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.table[name]; !ok {
		return fmt.Errorf("entry %s not found", name)
	}
	delete(r.table, name)
	return nil
}

func (r *table) Iterate() *Iterator {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

func (r *table) iterate() *Iterator {
	keys := make([]string, 0, len(r.table))
	entries := make(map[string]Entry, len(r.table))
	for key, e := range r.table {
		keys = append(keys, key)
		entries[key] = e
	}
	sort.Strings(keys)

	return &Iterator{current: -1, keys: keys, table: entries}
}

func (r *table) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.table)
}

func (r *table) Has(name string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.table[name]
	return ok
}

func (r *table) GetAll() map[string]multiset.MultiSet {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make(map[string]multiset.MultiSet, len(r.table))
	for name, e := range r.table {
		entries[name] = e.Set()
	}
	return entries
}

func (r *table) GetByLabel(selector labels.Selector) map[string]multiset.MultiSet {
	entries := map[string]multiset.MultiSet{}

	iter := r.Iterate()
	for iter.Next() {
		if selector.Matches(iter.Value().Labels()) {
			entries[iter.Name()] = iter.Value().Set()
		}
	}
	return entries
}

// UnionByLabel returns the union of the sets whose labels match selector.
func (r *table) UnionByLabel(selector labels.Selector) multiset.MultiSet {
	var b multiset.Builder
	for _, s := range r.GetByLabel(selector) {
		b.AddSet(s)
	}
	// the stored sets are valid, so the builder records no errors
	out, _ := b.Set()
	return out
}

// IntersectionByLabel returns the intersection of the sets whose labels
// match selector. It is empty when nothing matches.
func (r *table) IntersectionByLabel(selector labels.Selector) multiset.MultiSet {
	var out multiset.MultiSet
	first := true
	iter := r.Iterate()
	for iter.Next() {
		if !selector.Matches(iter.Value().Labels()) {
			continue
		}
		if first {
			out, first = iter.Value().Set(), false
			continue
		}
		out = out.Intersection(iter.Value().Set())
	}
	return out
}

// Containing returns the sorted names of the sets that contain b.
func (r *table) Containing(b interval.Bound) []string {
	var names []string
	iter := r.Iterate()
	for iter.Next() {
		if iter.Value().Set().Contains(b) {
			names = append(names, iter.Name())
		}
	}
	return names
}

func (r *table) add(e Entry, init bool) error {
	if err := r.validate(e.Name(), e.Set(), init); err != nil {
		return err
	}
	if _, ok := r.table[e.Name()]; ok {
		return fmt.Errorf("entry %s already exists", e.Name())
	}
	r.table[e.Name()] = e
	return nil
}

func (r *table) update(name string, s multiset.MultiSet) error {
	if err := r.validate(name, s, false); err != nil {
		return err
	}
	e, ok := r.table[name]
	if !ok {
		return fmt.Errorf("entry %s not found", name)
	}
	r.table[name] = NewEntry(name, s, e.Labels())
	return nil
}
