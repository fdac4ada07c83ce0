// Package collatz computes integer trajectories under the Collatz map.
//
// Two stepping rules are supported: the standard map (halve when even,
// 3n+1 when odd) and the accelerated T3 variant, which folds one odd step
// together with its following run of halvings into a single logical step.
// Values are arbitrary-precision; trajectories for modest starting points
// routinely climb past what a fixed-width integer can hold.
//
// Whether every trajectory reaches 1 is an open conjecture, so iteration is
// bounded by [MaxLen]. A capped trajectory is reported explicitly via
// [Result.Truncated] rather than silently cut short.
package collatz

import (
	"fmt"
	"math/big"
)

// MaxLen is the hard cap on trajectory length. It is a safety valve against
// the open conjecture that all trajectories terminate, not a correctness
// guarantee.
const MaxLen = 50000

// Rule selects the stepping rule applied by [Trajectory].
type Rule int

const (
	// Standard is the plain Collatz map: n/2 when even, 3n+1 when odd.
	Standard Rule = iota
	// Accelerated is the T3 shortcut: an odd step and all immediately
	// following halvings collapse into one logical step.
	Accelerated
)

// String returns the rule name as used in CLI flags and plot labels.
func (r Rule) String() string {
	switch r {
	case Standard:
		return "standard"
	case Accelerated:
		return "accelerated"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// ParseRule converts a flag value into a [Rule].
func ParseRule(s string) (Rule, error) {
	switch s {
	case "standard":
		return Standard, nil
	case "accelerated", "t3":
		return Accelerated, nil
	default:
		return 0, fmt.Errorf("unknown rule: %q (must be 'standard' or 'accelerated')", s)
	}
}

// Result is a computed trajectory. Values starts at the input and, unless
// Truncated is set, ends with 1. Truncated means the [MaxLen] cap was hit
// before the trajectory settled.
type Result struct {
	Values    []*big.Int
	Truncated bool
}

// StoppingTime returns the number of steps in the trajectory, i.e. one less
// than its length.
func (r Result) StoppingTime() int {
	return len(r.Values) - 1
}

var (
	one   = big.NewInt(1)
	three = big.NewInt(3)
)

// stepStandard applies the plain Collatz map once.
func stepStandard(v *big.Int) *big.Int {
	r := new(big.Int)
	if v.Bit(0) == 0 {
		return r.Rsh(v, 1)
	}
	r.Mul(v, three)
	return r.Add(r, one)
}

// stepAccelerated applies the T3 rule once: for odd v takes 3v+1, then
// strips the entire run of trailing halvings. Values at or below 1 are a
// fixed point so iteration can never escape downward.
func stepAccelerated(v *big.Int) *big.Int {
	if v.Cmp(one) <= 0 {
		return big.NewInt(1)
	}
	r := new(big.Int).Set(v)
	if r.Bit(0) == 1 {
		r.Mul(r, three)
		r.Add(r, one)
	}
	for r.Bit(0) == 0 {
		r.Rsh(r, 1)
	}
	return r
}

// step dispatches to the rule's stepping function.
func step(v *big.Int, rule Rule) *big.Int {
	if rule == Accelerated {
		return stepAccelerated(v)
	}
	return stepStandard(v)
}

// Trajectory iterates the chosen rule from n until the value 1 is reached
// (inclusive), or the [MaxLen] cap is hit, whichever comes first.
//
// Precondition: n >= 1. Behavior for non-positive n is undefined.
// For n <= 1 the trajectory is the single-element sequence [n].
//
// The returned values are fresh big.Ints; the caller may mutate them freely.
func Trajectory(n *big.Int, rule Rule) Result {
	values := []*big.Int{new(big.Int).Set(n)}
	if n.Cmp(one) <= 0 {
		return Result{Values: values}
	}
	for values[len(values)-1].Cmp(one) != 0 {
		if len(values) >= MaxLen {
			return Result{Values: values, Truncated: true}
		}
		values = append(values, step(values[len(values)-1], rule))
	}
	return Result{Values: values}
}

// TrajectoryInt is a convenience wrapper over [Trajectory] for small
// starting points.
func TrajectoryInt(n int64, rule Rule) Result {
	return Trajectory(big.NewInt(n), rule)
}

// StoppingTime returns the stopping time of n under the rule, along with
// whether the trajectory was truncated at the cap (in which case the
// stopping time is a lower bound, not an exact value).
func StoppingTime(n *big.Int, rule Rule) (int, bool) {
	res := Trajectory(n, rule)
	return res.StoppingTime(), res.Truncated
}

// StoppingTimes computes the stopping time for every n in the inclusive
// range [lo, hi]. It is the numeric sweep behind the stopping-time scatter
// plot; truncated entries report the capped length like [StoppingTime].
func StoppingTimes(lo, hi int64, rule Rule) []int {
	if hi < lo {
		return nil
	}
	times := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		t, _ := StoppingTime(big.NewInt(n), rule)
		times = append(times, t)
	}
	return times
}
