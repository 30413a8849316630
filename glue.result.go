package glue

import "strings"

// Result is the tagged output of a render: an ordered vector of assembled
// strings with per-row missing markers. The tag lets downstream callers
// recognize engine output and gives it indexing, concatenation, equality,
// and collapse behavior directly.
type Result struct {
	rows    []string
	missing []bool
	na      string // placeholder used when a missing row is displayed
}

func newResult(rows []string, missing []bool, na string) *Result {
	return &Result{
		rows:    rows,
		missing: missing,
		na:      na,
	}
}

// Len returns the number of rows.
func (r *Result) Len() int {
	return len(r.rows)
}

// At returns the row at index i and whether it is present (not missing).
func (r *Result) At(i int) (string, bool) {
	return r.rows[i], !r.missing[i]
}

// IsMissing reports whether the row at index i is missing.
func (r *Result) IsMissing(i int) bool {
	return r.missing[i]
}

// Strings returns a copy of the rows, rendering missing rows with the
// engine's configured placeholder.
func (r *Result) Strings() []string {
	out := make([]string, len(r.rows))
	for i, row := range r.rows {
		if r.missing[i] {
			out[i] = r.na
		} else {
			out[i] = row
		}
	}
	return out
}

// String renders the rows joined by newlines, for display.
func (r *Result) String() string {
	return strings.Join(r.Strings(), "\n")
}

// Concat returns a new Result with other's rows appended after r's rows.
func (r *Result) Concat(other *Result) *Result {
	return &Result{
		rows:    append(append([]string(nil), r.rows...), other.rows...),
		missing: append(append([]bool(nil), r.missing...), other.missing...),
		na:      r.na,
	}
}

// Equal reports whether two Results carry the same rows and missing markers.
// Missing rows compare equal to missing rows regardless of placeholder.
func (r *Result) Equal(other *Result) bool {
	if other == nil || len(r.rows) != len(other.rows) {
		return false
	}
	for i := range r.rows {
		if r.missing[i] != other.missing[i] {
			return false
		}
		if !r.missing[i] && r.rows[i] != other.rows[i] {
			return false
		}
	}
	return true
}

// Collapse joins all rows into one string with sep between elements; when
// lastSep is non-empty it replaces sep before the final element. Missing
// rows render with the configured placeholder.
func (r *Result) Collapse(sep, lastSep string) string {
	rows := r.Strings()
	if len(rows) == 0 {
		return ""
	}
	if lastSep == "" || len(rows) == 1 {
		return strings.Join(rows, sep)
	}
	head := strings.Join(rows[:len(rows)-1], sep)
	return head + lastSep + rows[len(rows)-1]
}
