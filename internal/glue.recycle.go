package internal

import "strconv"

// RecycleTarget computes the common row count for one template's value
// sequence lengths.
//
// The target is the maximum observed length, and every length must divide
// it evenly; this deliberately is not a least common multiple, so lengths
// {2, 3} fail even though 6 would reconcile them. Callers rely on the
// max-based rule for the typical same-length-or-1 case.
//
// Any zero length short-circuits to a zero target with no error: that
// template contributes no rows. A template with no code segments has
// target 1, a single row of literal text.
func RecycleTarget(lengths []int) (int, error) {
	target := 1
	for _, n := range lengths {
		if n == 0 {
			return 0, nil
		}
		if n > target {
			target = n
		}
	}
	for _, n := range lengths {
		if target%n != 0 {
			return 0, &RecycleError{Length: n, Target: target}
		}
	}
	return target, nil
}

// RecycleError reports a value sequence length that does not divide the
// chosen target row count.
type RecycleError struct {
	Length int
	Target int
}

func (e *RecycleError) Error() string {
	return "length " + strconv.Itoa(e.Length) +
		" does not divide the recycle target " + strconv.Itoa(e.Target)
}
