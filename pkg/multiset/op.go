package multiset

import (
	"fmt"
	"strings"

	"github.com/henderiw/intervalset/pkg/interval"
)

// Op is a binary set operation addressable by name.
type Op string

const (
	OpUnion               Op = "union"
	OpIntersection        Op = "intersection"
	OpDifference          Op = "difference"
	OpSymmetricDifference Op = "symmetric-difference"
)

var opNames = map[string]Op{
	"union":                OpUnion,
	"or":                   OpUnion,
	"|":                    OpUnion,
	"intersection":         OpIntersection,
	"intersect":            OpIntersection,
	"and":                  OpIntersection,
	"&":                    OpIntersection,
	"difference":           OpDifference,
	"diff":                 OpDifference,
	"-":                    OpDifference,
	"symmetric-difference": OpSymmetricDifference,
	"xor":                  OpSymmetricDifference,
	"^":                    OpSymmetricDifference,
}

// ParseOp returns the operation called name.
func ParseOp(name string) (Op, error) {
	op, ok := opNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", interval.ErrUnsupported, name)
	}
	return op, nil
}

// Apply returns the result of op on a and b.
func Apply(op Op, a, b MultiSet) (MultiSet, error) {
	switch op {
	case OpUnion:
		return a.Union(b), nil
	case OpIntersection:
		return a.Intersection(b), nil
	case OpDifference:
		return a.Difference(b), nil
	case OpSymmetricDifference:
		return a.SymmetricDifference(b), nil
	default:
		return MultiSet{}, fmt.Errorf("%w: %q", interval.ErrUnsupported, string(op))
	}
}
