package gen

// Generators are plain func(trial int) C values; everything here returns
// one, built from a Source where randomness is needed.

// Const returns a generator that yields v for every trial.
func Const[C any](v C) func(int) C {
	return func(int) C { return v }
}

// Index returns the identity generator g(i) = i.
func Index() func(int) int {
	return func(i int) int { return i }
}

// Map derives a generator by transforming another generator's output.
func Map[A, B any](g func(int) A, f func(A) B) func(int) B {
	return func(i int) B { return f(g(i)) }
}

// IntRange returns a generator drawing uniformly from [lo, hi].
// Panics if lo > hi.
func IntRange(s *Source, lo, hi int) func(int) int {
	if lo > hi {
		panic("gen: IntRange lo > hi")
	}
	return func(int) int { return lo + s.IntN(hi-lo) }
}

// OneOf returns a generator picking one of the given values at random.
// Panics if values is empty.
func OneOf[C any](s *Source, values ...C) func(int) C {
	if len(values) == 0 {
		panic("gen: OneOf called with no values")
	}
	return func(int) C { return values[s.IntN(len(values)-1)] }
}

// SliceOf returns a generator of slices with length in [0, maxLen],
// elements drawn from elem with the enclosing trial index.
// Panics if maxLen < 0.
func SliceOf[C any](s *Source, maxLen int, elem func(int) C) func(int) []C {
	if maxLen < 0 {
		panic("gen: SliceOf maxLen < 0")
	}
	return func(i int) []C {
		n := s.IntN(maxLen)
		out := make([]C, n)
		for j := range out {
			out[j] = elem(i)
		}
		return out
	}
}

// Mode defines how Corpus selects rows across trials.
type Mode string

const (
	// ModeSequential walks rows in order, wrapping around.
	ModeSequential Mode = "sequential"
	// ModeRandom selects a random row for each trial.
	ModeRandom Mode = "random"
)

// Corpus returns a generator backed by a fixed set of rows, selected
// sequentially by trial index (wrapping) or at random. Panics if rows
// is empty.
func Corpus[C any](s *Source, mode Mode, rows []C) func(int) C {
	if len(rows) == 0 {
		panic("gen: Corpus called with no rows")
	}
	if mode == "" {
		mode = ModeSequential
	}
	return func(i int) C {
		switch mode {
		case ModeRandom:
			return rows[s.IntN(len(rows)-1)]
		default:
			return rows[i%len(rows)]
		}
	}
}
