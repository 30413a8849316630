package glue

import (
	"fmt"
	"reflect"
	"strconv"
)

// Values is the result of evaluating one code segment: an ordered sequence
// of scalar values with a per-element missing marker. Length may be zero,
// one, or many; lengths are reconciled across segments by recycling.
type Values struct {
	items   []string
	missing []bool
}

// StringValues builds a Values from plain strings, none missing.
func StringValues(items ...string) Values {
	return Values{
		items:   append([]string(nil), items...),
		missing: make([]bool, len(items)),
	}
}

// MissingValue returns a single-element Values whose element is missing.
func MissingValue() Values {
	return Values{
		items:   []string{""},
		missing: []bool{true},
	}
}

// EmptyValues returns a zero-length Values. An expression evaluating to an
// empty sequence short-circuits its template to zero rows.
func EmptyValues() Values {
	return Values{}
}

// Len returns the number of elements.
func (v Values) Len() int {
	return len(v.items)
}

// At returns the element at index i and whether it is present (not missing).
func (v Values) At(i int) (string, bool) {
	return v.items[i], !v.missing[i]
}

// AppendMissing returns a copy of v with one missing element appended.
func (v Values) AppendMissing() Values {
	return Values{
		items:   append(append([]string(nil), v.items...), ""),
		missing: append(append([]bool(nil), v.missing...), true),
	}
}

// Append returns a copy of v with the given element appended.
func (v Values) Append(item string) Values {
	return Values{
		items:   append(append([]string(nil), v.items...), item),
		missing: append(append([]bool(nil), v.missing...), false),
	}
}

// ValueOf coerces an arbitrary evaluation result into a Values.
//
// Slices and arrays expand element-wise; nil becomes a single missing
// element; scalars become a single-element sequence. A value that cannot be
// rendered as data, such as a function, returns an error.
func ValueOf(v any) (Values, error) {
	switch vv := v.(type) {
	case nil:
		return MissingValue(), nil
	case Values:
		return vv, nil
	case []string:
		return StringValues(vv...), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := Values{
			items:   make([]string, 0, rv.Len()),
			missing: make([]bool, 0, rv.Len()),
		}
		for i := 0; i < rv.Len(); i++ {
			text, absent, err := coerceScalar(rv.Index(i).Interface())
			if err != nil {
				return Values{}, err
			}
			out.items = append(out.items, text)
			out.missing = append(out.missing, absent)
		}
		return out, nil
	}

	text, absent, err := coerceScalar(v)
	if err != nil {
		return Values{}, err
	}
	if absent {
		return MissingValue(), nil
	}
	return StringValues(text), nil
}

// coerceScalar renders one scalar as text. The missing return is true for
// nil elements inside sequences.
func coerceScalar(v any) (string, bool, error) {
	switch val := v.(type) {
	case nil:
		return "", true, nil
	case string:
		return val, false, nil
	case bool:
		return strconv.FormatBool(val), false, nil
	case int:
		return strconv.Itoa(val), false, nil
	case int64:
		return strconv.FormatInt(val, 10), false, nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), false, nil
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), false, nil
	case fmt.Stringer:
		return val.String(), false, nil
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Func, reflect.Chan:
		return "", false, &nonDataError{typeName: fmt.Sprintf("%T", v)}
	}

	return fmt.Sprintf("%v", v), false, nil
}

// nonDataError marks a value that must not be silently stringified.
// Evaluators rewrap it with the offending expression text.
type nonDataError struct {
	typeName string
}

func (e *nonDataError) Error() string {
	return ErrMsgNonDataValue + ": " + e.typeName
}
