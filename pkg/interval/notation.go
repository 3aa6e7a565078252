package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse reads an interval in bracket notation, "[a, b]", "(a, b)",
// "[a, b)" or "(a, b]". A bare number or "[x]" denotes a singleton.
func Parse(s string) (Interval, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Interval{}, fmt.Errorf("%w: empty input", ErrMalformedNotation)
	}
	if t[0] != '[' && t[0] != '(' {
		x, err := parseFloat(t, s)
		if err != nil {
			return Interval{}, err
		}
		return Singleton(x)
	}
	if len(t) < 2 {
		return Interval{}, fmt.Errorf("%w: no closing bracket in %q", ErrMalformedNotation, s)
	}
	lclosed := t[0] == '['
	var hclosed bool
	switch t[len(t)-1] {
	case ']':
		hclosed = true
	case ')':
	default:
		return Interval{}, fmt.Errorf("%w: no closing bracket in %q", ErrMalformedNotation, s)
	}
	body := t[1 : len(t)-1]
	parts := strings.Split(body, ",")
	switch len(parts) {
	case 1:
		x, err := parseFloat(parts[0], s)
		if err != nil {
			return Interval{}, err
		}
		return New(x, x, lclosed, hclosed)
	case 2:
		low, err := parseFloat(parts[0], s)
		if err != nil {
			return Interval{}, err
		}
		high, err := parseFloat(parts[1], s)
		if err != nil {
			return Interval{}, err
		}
		return New(low, high, lclosed, hclosed)
	default:
		return Interval{}, fmt.Errorf("%w: expected two bounds in %q", ErrMalformedNotation, s)
	}
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Interval {
	i, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return i
}

func parseFloat(tok, s string) (float64, error) {
	tok = strings.TrimSpace(tok)
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid bound %q in %q", ErrMalformedNotation, tok, s)
	}
	return x, nil
}

func (i Interval) String() string {
	if i.IsSingleton() {
		return "[" + formatFloat(i.low) + "]"
	}
	return format(i.low, i.high, !i.lopen, !i.hopen)
}

// MarshalText implements the encoding.TextMarshaler interface,
// The encoding is the same as returned by String.
func (i Interval) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The interval is expected in a form accepted by Parse.
func (i *Interval) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func format(low, high float64, lclosed, hclosed bool) string {
	var b strings.Builder
	if lclosed {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	b.WriteString(formatFloat(low))
	b.WriteString(", ")
	b.WriteString(formatFloat(high))
	if hclosed {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	// plain decimal unless the exponent is extreme, as encoding/json does
	fmtByte := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmtByte = 'e'
	}
	return strconv.FormatFloat(f, fmtByte, -1, 64)
}
