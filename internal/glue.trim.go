package internal

import (
	"strings"
)

// Trim normalizes multi-line template text before scanning.
//
// Single-line input is returned unchanged. Otherwise backslash-newline
// continuations are resolved on the raw text (they change line boundaries,
// so this happens before any indentation analysis), the common leading
// whitespace of all non-blank lines after the first is stripped from every
// line after the first, and the first and last lines are whitespace-stripped
// at both ends. Trim is idempotent.
func Trim(source string) string {
	if !strings.Contains(source, StrNewline) {
		return source
	}

	// A backslash immediately before a newline joins the two lines.
	source = strings.ReplaceAll(source, StrLineContinuation, "")

	lines := strings.Split(source, StrNewline)

	// Minimum leading-whitespace width among non-blank lines, excluding the
	// first line. The first line sits against the opening quote and carries
	// no meaningful indentation.
	width := -1
	for _, line := range lines[1:] {
		if isBlankLine(line) {
			continue
		}
		w := leadingWhitespaceWidth(line)
		if width < 0 || w < width {
			width = w
		}
	}

	if width > 0 {
		for i := 1; i < len(lines); i++ {
			lines[i] = stripIndent(lines[i], width)
		}
	}

	lines[0] = strings.TrimSpace(lines[0])
	lines[len(lines)-1] = strings.TrimSpace(lines[len(lines)-1])

	if allBlankLines(lines) {
		return ""
	}
	return strings.Join(lines, StrNewline)
}

// leadingWhitespaceWidth counts leading space and tab characters.
func leadingWhitespaceWidth(line string) int {
	for i := 0; i < len(line); i++ {
		if !isWhitespaceChar(line[i]) {
			return i
		}
	}
	return len(line)
}

// stripIndent removes up to width leading whitespace characters.
// Blank lines shorter than width are stripped to empty, never padded.
func stripIndent(line string, width int) string {
	i := 0
	for i < len(line) && i < width && isWhitespaceChar(line[i]) {
		i++
	}
	return line[i:]
}

func isBlankLine(line string) bool {
	return leadingWhitespaceWidth(line) == len(line)
}

func allBlankLines(lines []string) bool {
	for _, line := range lines {
		if !isBlankLine(line) {
			return false
		}
	}
	return true
}

func isWhitespaceChar(ch byte) bool {
	return ch == CharSpace || ch == CharTab || ch == CharCarriageRet
}
