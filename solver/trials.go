package solver

import (
	"fmt"
	"log"
	"math/big"
	"slices"
	"time"
)

// defaultModuli are the screening moduli used to skip hopeless y values
// before the bracketing search. 840 = 3·5·7·8 and 2431 = 11·13·17, so the
// three tables together cover congruences for many small primes at the cost
// of three lookups per candidate.
var defaultModuli = []int{840, 1104, 2431}

// Solution is one (x, y) pair satisfying the equation.
type Solution struct {
	X, Y *big.Int
}

// TrialSolver looks for solutions directly: every y from 2 through the
// limit is tried, and for each y that survives the residue screen a
// bracketing search narrows toward an x with Left(x) == Right(y).
//
// Exhausting the limit without a solution is not a proof that none exists,
// only that none exists with y up to the limit.
type TrialSolver struct {
	eq          Equation
	limit       uint64
	stopAtFirst bool
	verbose     bool
	moduli      []int
	table       *residueTable

	solutions []Solution
	yTrials   uint64
	xTrials   uint64
	elapsed   time.Duration
}

// NewTrialSolver builds a solver for the given equation with the defaults:
// limit 1,000,000, search all solutions, verbose on, screening moduli
// {840, 1104, 2431}.
func NewTrialSolver(eq Equation) *TrialSolver {
	return &TrialSolver{
		eq:      eq,
		limit:   1_000_000,
		verbose: true,
		moduli:  defaultModuli,
	}
}

// SetLimit sets the highest y tested. Solve tries y = 2 through the limit
// inclusive, so the smallest meaningful limit is 2.
func (s *TrialSolver) SetLimit(limit uint64) error {
	if limit < 2 {
		return fmt.Errorf("%w: limit must be at least 2", ErrInvalidConfiguration)
	}
	s.limit = limit
	return nil
}

// SetStopAtFirst makes Solve return as soon as one solution is found.
func (s *TrialSolver) SetStopAtFirst(stopAtFirst bool) {
	s.stopAtFirst = stopAtFirst
}

// SetVerbose controls whether solutions and the final outcome are logged.
func (s *TrialSolver) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// SetModuli replaces the default screening moduli. The residue table is
// rebuilt on the next Solve.
func (s *TrialSolver) SetModuli(moduli []int) error {
	if len(moduli) == 0 {
		return fmt.Errorf("%w: need at least one screening modulus", ErrInvalidConfiguration)
	}
	for _, m := range moduli {
		if m < 2 {
			return fmt.Errorf("%w: screening modulus %d is less than 2", ErrInvalidConfiguration, m)
		}
	}
	s.moduli = slices.Clone(moduli)
	s.table = nil
	return nil
}

// Solve runs the search and reports whether at least one solution was
// recorded. The lower bound reached for one y seeds the next: Right is
// increasing in y, so the matching x can only grow.
func (s *TrialSolver) Solve() bool {
	start := time.Now()
	if s.table == nil {
		s.table = newResidueTable(s.eq, s.moduli)
	}
	s.solutions = nil
	s.yTrials, s.xTrials = 0, 0

	found := false
	var lastMin *big.Int
	y := new(big.Int).Set(one)
	yMax := new(big.Int).SetUint64(s.limit)
	for y.Cmp(yMax) < 0 {
		y.Add(y, one)
		target := s.eq.Right(y)
		if !s.table.canMatch(target) {
			continue
		}
		s.yTrials++

		x, carry, probes := bracketSearch(s.eq, target, lastMin)
		s.xTrials += probes
		lastMin = carry
		if x == nil {
			continue
		}
		s.solutions = append(s.solutions, Solution{X: x, Y: new(big.Int).Set(y)})
		if s.verbose {
			log.Printf("solution: x=%s, y=%s", x, y)
		}
		found = true
		if s.stopAtFirst {
			break
		}
	}

	if !found && s.verbose {
		log.Printf("no solution up to y=%d", s.limit)
	}
	s.elapsed = time.Since(start)
	return found
}

// Solutions returns the pairs found by the last Solve, in ascending x
// (equivalently ascending y, since Right is strictly increasing).
func (s *TrialSolver) Solutions() []Solution {
	return s.solutions
}

// Trials returns the number of y values that survived the residue screen
// and the total number of x probes spent on them, for the last Solve.
func (s *TrialSolver) Trials() (yTrials, xTrials uint64) {
	return s.yTrials, s.xTrials
}

// Elapsed returns the wall-clock duration of the last Solve call.
func (s *TrialSolver) Elapsed() time.Duration {
	return s.elapsed
}

// Moduli returns the screening moduli in use.
func (s *TrialSolver) Moduli() []int {
	return slices.Clone(s.moduli)
}

// LeftResidueCounts returns, for each screening modulus, how many residues
// the left side can attain. Low counts mean the screen rejects most y.
func (s *TrialSolver) LeftResidueCounts() []int {
	if s.table == nil {
		s.table = newResidueTable(s.eq, s.moduli)
	}
	return s.table.counts()
}

// bracketSearch narrows toward an x ≥ 2 with Left(x) == target. min tracks
// the last x known to be too small and max the last known too large; while
// max is unknown the probe doubles, afterwards it bisects. The search stops
// when the bracket has shrunk to max − min == 1 with no integer inside.
//
// lastMin, when non-nil, seeds both the first probe and the lower bound
// (it must be known too small for this target, which holds when targets are
// tried in increasing order). The returned carry is the final lower bound
// for the caller to pass to the next search; it is nil only if the very
// first probe of a fresh search already overshot.
func bracketSearch(eq Equation, target, lastMin *big.Int) (found, carry *big.Int, probes uint64) {
	var min, max *big.Int
	x := new(big.Int)
	if lastMin == nil {
		x.Set(two)
	} else {
		x.Set(lastMin)
		min = new(big.Int).Set(lastMin)
	}

	for {
		probes++
		switch eq.Left(x).Cmp(target) {
		case 0:
			return x, min, probes
		case -1:
			min = new(big.Int).Set(x)
			if max == nil {
				x.Mul(x, two)
			} else {
				x.Add(min, max).Rsh(x, 1)
			}
		default:
			if min == nil {
				// the first probe already overshot: no x ≥ 2 can work
				return nil, nil, probes
			}
			max = new(big.Int).Set(x)
			x.Add(min, max).Rsh(x, 1)
		}
		if max != nil && new(big.Int).Sub(max, min).Cmp(one) == 0 {
			return nil, min, probes
		}
	}
}

// residueTable records, for each screening modulus, which residues the left
// side can attain. Built once per Solve and shared across all y candidates.
type residueTable struct {
	moduli []*big.Int
	can    [][]bool
}

func newResidueTable(eq Equation, moduli []int) *residueTable {
	t := &residueTable{
		moduli: make([]*big.Int, len(moduli)),
		can:    make([][]bool, len(moduli)),
	}
	v := new(big.Int)
	r := new(big.Int)
	for i, m := range moduli {
		t.moduli[i] = big.NewInt(int64(m))
		t.can[i] = make([]bool, m)
		for x := 0; x < m; x++ {
			v.SetInt64(int64(x))
			t.can[i][r.Mod(eq.Left(v), t.moduli[i]).Int64()] = true
		}
	}
	return t
}

// canMatch reports whether the left side can be congruent to target under
// every screening modulus. A false return means no x exists for this target.
func (t *residueTable) canMatch(target *big.Int) bool {
	r := new(big.Int)
	for i, m := range t.moduli {
		if !t.can[i][r.Mod(target, m).Int64()] {
			return false
		}
	}
	return true
}

func (t *residueTable) counts() []int {
	counts := make([]int, len(t.can))
	for i, reachable := range t.can {
		for _, ok := range reachable {
			if ok {
				counts[i]++
			}
		}
	}
	return counts
}
