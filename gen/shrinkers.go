package gen

import "math"

// Standard shrinkers. Each returns an ordered, finite list of strictly
// smaller candidates and an empty list for minimal values, so shrink
// loops built on them always terminate.

// NoShrink returns a shrinker that never proposes anything.
func NoShrink[C any]() func(C) []C {
	return func(C) []C { return nil }
}

// ShrinkInt proposes values closer to zero, most aggressive first:
// zero, the positive mirror for negative inputs, then halving steps
// toward the input. Empty for zero.
func ShrinkInt(x int) []int {
	if x == 0 {
		return nil
	}
	out := []int{0}
	// -MinInt overflows back to MinInt, which would propose the input
	// itself; the halving steps still cover it.
	if x < 0 && x != math.MinInt {
		out = append(out, -x)
	}
	for d := x / 2; d != 0; d /= 2 {
		out = append(out, x-d)
	}
	return out
}

// ShrinkSlice proposes strictly shorter slices: empty, each half, then
// every single-element removal. Proposals are copies, never aliases of
// the input. Empty for nil or empty input.
func ShrinkSlice[C any](xs []C) [][]C {
	if len(xs) == 0 {
		return nil
	}

	out := [][]C{{}}
	if len(xs) == 1 {
		return out
	}

	mid := len(xs) / 2
	out = append(out, cloneSlice(xs[:mid]), cloneSlice(xs[mid:]))

	for i := range xs {
		removed := make([]C, 0, len(xs)-1)
		removed = append(removed, xs[:i]...)
		removed = append(removed, xs[i+1:]...)
		out = append(out, removed)
	}
	return out
}

// ShrinkString is ShrinkSlice over the string's bytes.
func ShrinkString(s string) []string {
	props := ShrinkSlice([]byte(s))
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = string(p)
	}
	return out
}

func cloneSlice[C any](xs []C) []C {
	out := make([]C, len(xs))
	copy(out, xs)
	return out
}
