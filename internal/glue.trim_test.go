package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single line is returned unchanged",
			input:    "  hello  ",
			expected: "  hello  ",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "leading newline and common indent",
			input:    "\n  foo\n  bar",
			expected: "\nfoo\nbar",
		},
		{
			name:     "uneven indent keeps the difference",
			input:    "\n  foo\n    bar\n  ",
			expected: "\nfoo\n  bar\n",
		},
		{
			name:     "first line stripped at both ends",
			input:    "  first  \n    second\n",
			expected: "first\nsecond\n",
		},
		{
			name:     "last line stripped at both ends",
			input:    "first\n  second\n  third  ",
			expected: "first\nsecond\nthird",
		},
		{
			name:     "blank interior lines never padded",
			input:    "a\n\n    b\n",
			expected: "a\n\nb\n",
		},
		{
			name:     "tabs count as indentation",
			input:    "a\n\tb\n\t\tc\n",
			expected: "a\nb\n\tc\n",
		},
		{
			name:     "backslash newline joins lines",
			input:    "a\\\nb\nc",
			expected: "ab\nc",
		},
		{
			name:     "continuation resolved before indent analysis",
			input:    "\n  foo \\\nbar\n  baz\n",
			expected: "\nfoo bar\nbaz\n",
		},
		{
			name:     "entirely blank lines yield empty content",
			input:    "\n   \n\t\n",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Trim(tt.input))
		})
	}
}

func TestTrim_Idempotent(t *testing.T) {
	inputs := []string{
		"hello",
		"\n  foo\n  bar\n",
		"  first  \n    second\n  third",
		"a\n\n    b\n",
		"a\\\nb",
		"\n   \n\t\n",
		"\n\tone\n\t\ttwo\n\tthree\n",
	}

	for _, input := range inputs {
		once := Trim(input)
		assert.Equal(t, once, Trim(once), "trim must be idempotent for %q", input)
	}
}

func TestTrim_IndentationLaw(t *testing.T) {
	// First line unindented, all subsequent non-blank lines share a common
	// prefix of width 4: exactly 4 characters come off lines 2..n.
	input := "head\n    alpha\n    beta\n        gamma\n"
	expected := "head\nalpha\nbeta\n    gamma\n"
	assert.Equal(t, expected, Trim(input))
}
