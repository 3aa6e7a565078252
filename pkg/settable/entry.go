package settable

import (
	"github.com/henderiw/intervalset/pkg/multiset"
	"k8s.io/apimachinery/pkg/labels"
)

type Entry interface {
	Name() string
	Set() multiset.MultiSet
	Labels() labels.Set
}

type entry struct {
	name   string
	set    multiset.MultiSet
	labels labels.Set
}

func (r entry) Name() string           { return r.name }
func (r entry) Set() multiset.MultiSet { return r.set }
func (r entry) Labels() labels.Set     { return r.labels }

func NewEntry(name string, s multiset.MultiSet, l labels.Set) Entry {
	return entry{
		name:   name,
		set:    s,
		labels: copyLabels(l),
	}
}

func copyLabels(l labels.Set) labels.Set {
	out := make(labels.Set, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}
