package genprop

import (
	"fmt"

	"genprop/gen"
)

// DefaultTrials is the number of trials Check runs.
const DefaultTrials = 100

// Check runs DefaultTrials trials of the predicate against generated
// candidates. See CheckN.
func Check[C any](predicate Predicate[C], generator Generator[C], shrinker Shrinker[C]) Outcome {
	return CheckN(DefaultTrials, predicate, generator, shrinker)
}

// CheckN drives trials generate-and-check cycles. For each trial index i
// it obtains generator(i) and applies the predicate. On the first failing
// candidate it shrinks to a minimal counterexample and returns a failure
// whose cause embeds the shrink-confirmed reason, the minimal candidate,
// and the original candidate; remaining trials are not run. If every
// trial passes (or trials <= 0), it returns Success.
//
// A falsified property is not an engine error: CheckN never fails on its
// own, and panics from user-supplied functions propagate uncaught.
func CheckN[C any](trials int, predicate Predicate[C], generator Generator[C], shrinker Shrinker[C]) Outcome {
	return check(trials, 0, predicate, generator, shrinker)
}

// CheckParams is CheckN driven by a Params struct. A non-zero Seed
// reseeds the default random source first, so the run is reproducible;
// MaxShrinkSteps bounds the shrink loop.
func CheckParams[C any](p Params, predicate Predicate[C], generator Generator[C], shrinker Shrinker[C]) Outcome {
	if p.Seed != 0 {
		gen.Reseed(p.Seed)
	}
	return check(p.Trials, p.MaxShrinkSteps, predicate, generator, shrinker)
}

func check[C any](trials, maxShrinkSteps int, predicate Predicate[C], generator Generator[C], shrinker Shrinker[C]) Outcome {
	for i := 0; i < trials; i++ {
		candidate := generator(i)

		if !predicate(candidate).Successful() {
			shrunk, outcome := ShrinkN(maxShrinkSteps, predicate, candidate, shrinker)

			return Failure(fmt.Sprintf("\nReason: %s\n     in %v\n  (from %v)\n",
				outcome.Cause(), shrunk, candidate))
		}
	}
	return Success()
}
