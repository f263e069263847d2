package genprop

// Shrink reduces a failing candidate to a locally-minimal counterexample.
//
// Starting from candidate, it repeatedly asks the shrinker for smaller
// proposals and commits the first proposal that still falsifies the
// predicate, restarting the scan from the new smallest. It stops when no
// proposal falsifies the predicate, and returns the minimal candidate
// together with the predicate's outcome on it (failing by construction).
//
// The shrinker's own ordering encodes preference among proposals; the
// engine performs no independent size comparison. Termination is the
// caller's obligation: shrinker sequences must be finite and well-founded.
func Shrink[C any](predicate Predicate[C], candidate C, shrinker Shrinker[C]) (C, Outcome) {
	return ShrinkN(0, predicate, candidate, shrinker)
}

// ShrinkN is Shrink with a step budget: at most maxSteps candidates are
// committed before the loop stops. maxSteps <= 0 means unbounded, which
// matches Shrink. The budget guards against ill-founded shrinkers at the
// cost of a possibly non-minimal result.
func ShrinkN[C any](maxSteps int, predicate Predicate[C], candidate C, shrinker Shrinker[C]) (C, Outcome) {
	smallest := candidate
	steps := 0

	for {
		if maxSteps > 0 && steps >= maxSteps {
			break
		}

		committed := false
		for _, proposal := range shrinker(smallest) {
			if !predicate(proposal).Successful() {
				smallest = proposal
				committed = true
				steps++
				break
			}
		}
		if !committed {
			break
		}
	}

	return smallest, predicate(smallest)
}
