package genprop

import (
	"math"
	"testing"

	"genprop/gen"
)

func TestShrink_HoldsAtBoundary(t *testing.T) {
	// Shrinker only proposes below 50 when strictly above it, so 50 is
	// already minimal.
	predicate := FromBool(func(x int) bool { return x < 50 })
	shrinker := func(x int) []int {
		if x > 50 {
			return []int{x - 1}
		}
		return nil
	}

	smallest, outcome := Shrink(predicate, 80, shrinker)

	if smallest != 50 {
		t.Errorf("smallest = %d, want 50", smallest)
	}
	if outcome.Successful() {
		t.Error("outcome on minimal candidate should be failing")
	}
}

func TestShrink_StopsWhenProposalPasses(t *testing.T) {
	// From 10 the only proposal is 8, which satisfies x < 10, so the
	// engine must keep 10.
	predicate := FromBool(func(x int) bool { return x < 10 })
	shrinker := func(x int) []int {
		if x >= 10 {
			return []int{x - 2}
		}
		return nil
	}

	smallest, outcome := Shrink(predicate, 10, shrinker)

	if smallest != 10 {
		t.Errorf("smallest = %d, want 10", smallest)
	}
	if outcome.Successful() {
		t.Error("outcome should be failing")
	}
}

func TestShrink_MinimalCandidateUnchanged(t *testing.T) {
	predicate := FromBool(func(x int) bool { return false })
	shrinker := func(x int) []int { return nil }

	smallest, outcome := Shrink(predicate, 42, shrinker)

	if smallest != 42 {
		t.Errorf("smallest = %d, want 42 unchanged", smallest)
	}
	if outcome.Successful() {
		t.Error("outcome should be predicate(42), which fails")
	}
}

func TestShrink_FirstFailingProposalWins(t *testing.T) {
	// Both proposals falsify the predicate; the shrinker's ordering
	// decides, so the first one is committed each round.
	predicate := FromBool(func(x int) bool { return x < 0 })
	var committed []int
	shrinker := func(x int) []int {
		if x >= 2 {
			return []int{x - 2, x - 1}
		}
		return nil
	}
	wrapped := func(x int) Outcome {
		o := predicate(x)
		if !o.Successful() {
			committed = append(committed, x)
		}
		return o
	}

	smallest, _ := Shrink(wrapped, 6, shrinker)

	if smallest != 0 {
		t.Errorf("smallest = %d, want 0", smallest)
	}
	// 6 -> 4 -> 2 -> 0, never via the -1 proposals.
	for _, c := range committed {
		if c%2 != 0 {
			t.Errorf("committed odd candidate %d; first proposal should win", c)
		}
	}
}

func TestShrink_CommittedStepsAllFail(t *testing.T) {
	predicate := func(x int) Outcome {
		if x < 3 {
			return Success()
		}
		return Failuref("%d is too big", x)
	}
	shrinker := func(x int) []int {
		if x > 0 {
			return []int{x / 2, x - 1}
		}
		return nil
	}

	smallest, outcome := Shrink(predicate, 12, shrinker)

	if smallest != 3 {
		t.Errorf("smallest = %d, want 3", smallest)
	}
	if outcome.Cause() != "3 is too big" {
		t.Errorf("cause = %q, want %q", outcome.Cause(), "3 is too big")
	}
}

func TestShrink_TerminatesOnMinIntCounterexample(t *testing.T) {
	// A property failing only at MinInt is already minimal under the
	// stock integer shrinker: every proposal passes, so the unbounded
	// loop must stop after a single scan.
	predicate := FromBool(func(x int) bool { return x != math.MinInt })

	smallest, outcome := Shrink(predicate, math.MinInt, gen.ShrinkInt)

	if smallest != math.MinInt {
		t.Errorf("smallest = %d, want MinInt unchanged", smallest)
	}
	if outcome.Successful() {
		t.Error("outcome on the minimal candidate should be failing")
	}
}

func TestShrinkN_BudgetStopsIllFoundedShrinker(t *testing.T) {
	// Ever-growing proposals would spin forever without a budget.
	predicate := FromBool(func(x int) bool { return false })
	shrinker := func(x int) []int { return []int{x + 1} }

	smallest, outcome := ShrinkN(10, predicate, 0, shrinker)

	if smallest != 10 {
		t.Errorf("smallest = %d, want 10 after budget", smallest)
	}
	if outcome.Successful() {
		t.Error("outcome should be failing")
	}
}

func TestShrinkN_ZeroBudgetIsUnbounded(t *testing.T) {
	predicate := FromBool(func(x int) bool { return false })
	shrinker := func(x int) []int {
		if x > 0 {
			return []int{x - 1}
		}
		return nil
	}

	smallest, _ := ShrinkN(0, predicate, 100, shrinker)

	if smallest != 0 {
		t.Errorf("smallest = %d, want full reduction to 0", smallest)
	}
}
