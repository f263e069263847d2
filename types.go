package genprop

// Generator produces the candidate for a given trial index (0-based).
// A generator is invoked exactly once per trial and may consult a random
// source internally; the engine imposes no statefulness of its own.
type Generator[C any] func(trial int) C

// Predicate tests a property of a candidate. Predicates must be
// deterministic and safe to call repeatedly on the same or shrunk
// candidates: the shrink engine re-applies them many times.
type Predicate[C any] func(c C) Outcome

// Shrinker proposes an ordered, finite list of candidates considered
// smaller than its input. It must eventually return an empty list for
// minimal values or the shrink loop will not terminate.
type Shrinker[C any] func(c C) []C

// FromBool adapts a plain boolean predicate to a Predicate. A false
// result becomes a failure whose cause names the offending candidate.
func FromBool[C any](f func(c C) bool) Predicate[C] {
	return func(c C) Outcome {
		if f(c) {
			return Success()
		}
		return Failuref("predicate is false for %v", c)
	}
}
