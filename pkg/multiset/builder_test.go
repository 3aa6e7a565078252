package multiset

import (
	"errors"
	"math"
	"testing"

	"github.com/henderiw/intervalset/pkg/interval"
	"github.com/tj/assert"
)

func TestBuilder(t *testing.T) {
	cases := map[string]struct {
		build       func(b *Builder)
		expected    string
		expectedErr error
	}{
		"Empty": {
			build:    func(b *Builder) {},
			expected: "{}",
		},
		"AddOnly": {
			build: func(b *Builder) {
				b.AddNotation("[0, 1)")
				b.AddNotation("(1, 2]")
				b.Add(interval.Point(1))
			},
			expected: "{[0, 2]}",
		},
		"RemoveThenAdd": {
			build: func(b *Builder) {
				b.AddNotation("[0, 10]")
				b.RemoveNotation("[2, 3]")
				// added after the removal, so kept
				b.AddNotation("[2.5, 2.6]")
			},
			expected: "{[0, 2), [2.5, 2.6], (3, 10]}",
		},
		"RemoveEverything": {
			build: func(b *Builder) {
				b.AddNotation("[0, 10]")
				b.Remove(interval.MustParse("[-inf, inf]"))
			},
			expected: "{}",
		},
		"Sets": {
			build: func(b *Builder) {
				b.AddSet(MustParse("[0, 4]", "[6, 8]"))
				b.RemoveSet(MustParse("(1, 2)", "7"))
			},
			expected: "{[0, 1], [2, 4], [6, 7), (7, 8]}",
		},
		"InvalidNotation": {
			build: func(b *Builder) {
				b.AddNotation("[0, 1]")
				b.AddNotation("[0, 1")
			},
			expected:    "{[0, 1]}",
			expectedErr: interval.ErrMalformedNotation,
		},
		"InvalidBounds": {
			build: func(b *Builder) {
				b.AddNotation("[3, 1]")
				b.Add(interval.Point(4))
				b.Remove(interval.Point(math.NaN()))
			},
			expected:    "{[4]}",
			expectedErr: interval.ErrInvalidBounds,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var b Builder
			tc.build(&b)
			s, err := b.Set()
			if tc.expectedErr != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tc.expectedErr), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expected, s.String())
		})
	}
}

func TestBuilderErrorsJoined(t *testing.T) {
	var b Builder
	b.AddNotation("x")
	b.AddNotation("[2, 1]")
	_, err := b.Set()
	assert.True(t, errors.Is(err, interval.ErrMalformedNotation))
	assert.True(t, errors.Is(err, interval.ErrInvalidBounds))

	// errors are reported once
	_, err = b.Set()
	assert.NoError(t, err)
}

func TestBuilderReuse(t *testing.T) {
	var b Builder
	b.AddNotation("[0, 1]")
	first, err := b.Set()
	assert.NoError(t, err)
	b.AddNotation("[2, 3]")
	second, err := b.Set()
	assert.NoError(t, err)
	assert.Equal(t, "{[0, 1]}", first.String())
	assert.Equal(t, "{[0, 1], [2, 3]}", second.String())
}

func TestParseFailsWhole(t *testing.T) {
	s, err := Parse("[0, 1]", "oops")
	assert.True(t, errors.Is(err, interval.ErrMalformedNotation))
	assert.True(t, s.IsEmpty())
}
