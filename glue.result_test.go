package glue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Accessors(t *testing.T) {
	r := newResult([]string{"a", "", "c"}, []bool{false, true, false}, "NA")

	require.Equal(t, 3, r.Len())

	row, present := r.At(0)
	assert.True(t, present)
	assert.Equal(t, "a", row)

	_, present = r.At(1)
	assert.False(t, present)
	assert.True(t, r.IsMissing(1))

	assert.Equal(t, []string{"a", "NA", "c"}, r.Strings())
	assert.Equal(t, "a\nNA\nc", r.String())
}

func TestResult_Concat(t *testing.T) {
	a := newResult([]string{"1"}, []bool{false}, "NA")
	b := newResult([]string{"", "2"}, []bool{true, false}, "NA")

	c := a.Concat(b)
	require.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"1", "NA", "2"}, c.Strings())

	// Originals untouched
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, b.Len())
}

func TestResult_Equal(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Result
		expected bool
	}{
		{
			name:     "same rows",
			a:        newResult([]string{"x", "y"}, []bool{false, false}, "NA"),
			b:        newResult([]string{"x", "y"}, []bool{false, false}, "NA"),
			expected: true,
		},
		{
			name:     "different rows",
			a:        newResult([]string{"x"}, []bool{false}, "NA"),
			b:        newResult([]string{"y"}, []bool{false}, "NA"),
			expected: false,
		},
		{
			name:     "different lengths",
			a:        newResult([]string{"x"}, []bool{false}, "NA"),
			b:        newResult([]string{"x", "y"}, []bool{false, false}, "NA"),
			expected: false,
		},
		{
			name:     "missing equals missing regardless of placeholder",
			a:        newResult([]string{""}, []bool{true}, "NA"),
			b:        newResult([]string{""}, []bool{true}, "?"),
			expected: true,
		},
		{
			name:     "missing differs from present",
			a:        newResult([]string{""}, []bool{true}, "NA"),
			b:        newResult([]string{""}, []bool{false}, "NA"),
			expected: false,
		},
		{
			name:     "nil other",
			a:        newResult([]string{"x"}, []bool{false}, "NA"),
			b:        nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
		})
	}
}

func TestResult_Collapse(t *testing.T) {
	tests := []struct {
		name     string
		result   *Result
		sep      string
		lastSep  string
		expected string
	}{
		{
			name:     "empty result",
			result:   newResult(nil, nil, "NA"),
			sep:      ", ",
			expected: "",
		},
		{
			name:     "single row ignores lastSep",
			result:   newResult([]string{"a"}, []bool{false}, "NA"),
			sep:      ", ",
			lastSep:  " and ",
			expected: "a",
		},
		{
			name:     "plain join",
			result:   newResult([]string{"a", "b", "c"}, []bool{false, false, false}, "NA"),
			sep:      ", ",
			expected: "a, b, c",
		},
		{
			name:     "last separator",
			result:   newResult([]string{"a", "b", "c"}, []bool{false, false, false}, "NA"),
			sep:      ", ",
			lastSep:  " and ",
			expected: "a, b and c",
		},
		{
			name:     "missing rows use placeholder",
			result:   newResult([]string{"a", ""}, []bool{false, true}, "NA"),
			sep:      "-",
			expected: "a-NA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.Collapse(tt.sep, tt.lastSep))
		})
	}
}
