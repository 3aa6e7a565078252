package multiset

import (
	"fmt"
	"strings"

	"github.com/henderiw/intervalset/pkg/interval"
)

// ParseText parses the form returned by String, "{[0, 1), [2]}". The
// braces are optional and members are separated by commas.
func ParseText(s string) (MultiSet, error) {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "{") {
		if !strings.HasSuffix(t, "}") {
			return MultiSet{}, fmt.Errorf("%w: no closing brace in %q", interval.ErrMalformedNotation, s)
		}
		t = t[1 : len(t)-1]
	}
	notations, err := splitMembers(t)
	if err != nil {
		return MultiSet{}, fmt.Errorf("%w in %q", err, s)
	}
	return Parse(notations...)
}

// splitMembers splits s at the commas that are not inside brackets.
func splitMembers(s string) ([]string, error) {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced %q", interval.ErrMalformedNotation, s[i])
			}
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced brackets", interval.ErrMalformedNotation)
	}
	if last := strings.TrimSpace(s[start:]); last != "" || len(out) > 0 {
		out = append(out, s[start:])
	}
	return out, nil
}

// MarshalText implements the encoding.TextMarshaler interface,
// The encoding is the same as returned by String.
func (s MultiSet) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (s *MultiSet) UnmarshalText(text []byte) error {
	v, err := ParseText(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
