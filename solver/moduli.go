package solver

import (
	"fmt"
	"log"
	"math/big"
	"time"
)

// ModuliFilter tests a necessary condition for solvability: for every
// modulus i in [2, maxModulus), the set of residues A·x^n + B can attain
// must intersect the set C·y^m + D can attain. A single modulus with
// disjoint residue sets proves the equation has no integer solutions.
// Passing every modulus proves nothing either way.
type ModuliFilter struct {
	eq         Equation
	maxModulus int
	onlyPrime  bool
	verbose    bool

	witness int
	elapsed time.Duration
}

// NewModuliFilter builds a filter for the given equation with the defaults:
// moduli up to 561, composites included, verbose on.
func NewModuliFilter(eq Equation) *ModuliFilter {
	return &ModuliFilter{
		eq:         eq,
		maxModulus: 561,
		verbose:    true,
	}
}

// SetMaxModulus sets the exclusive upper bound on tested moduli. The bound
// must be at least 3 so that at least modulus 2 is tested.
func (f *ModuliFilter) SetMaxModulus(maxModulus int) error {
	if maxModulus < 3 {
		return fmt.Errorf("%w: max modulus must be at least 3", ErrInvalidConfiguration)
	}
	f.maxModulus = maxModulus
	return nil
}

// SetOnlyPrime restricts the scan to prime moduli. Composite moduli are
// treated as vacuously passing.
func (f *ModuliFilter) SetOnlyPrime(onlyPrime bool) {
	f.onlyPrime = onlyPrime
}

// SetVerbose controls whether a disproving modulus is logged.
func (f *ModuliFilter) SetVerbose(verbose bool) {
	f.verbose = verbose
}

// Possible scans the moduli in increasing order, stopping at the first one
// whose residue sets are disjoint. It returns false if such a modulus was
// found (the equation is unsolvable; Witness reports the modulus) and true
// if every tested modulus passed.
func (f *ModuliFilter) Possible() bool {
	start := time.Now()
	f.witness = 0
	possible := true
	for i := 2; i < f.maxModulus; i++ {
		if !f.analyzeModulus(i) {
			f.witness = i
			possible = false
			break
		}
	}
	f.elapsed = time.Since(start)
	return possible
}

// Witness returns the modulus that disproved solvability in the last
// Possible call, or 0 if every modulus passed.
func (f *ModuliFilter) Witness() int {
	return f.witness
}

// Elapsed returns the wall-clock duration of the last Possible call.
func (f *ModuliFilter) Elapsed() time.Duration {
	return f.elapsed
}

// analyzeModulus reports whether the two sides can be congruent mod i.
// Residues are collected for x and y in [0, i); values outside that range
// add nothing since both sides are polynomials in their variable.
func (f *ModuliFilter) analyzeModulus(i int) bool {
	mod := big.NewInt(int64(i))
	if f.onlyPrime && !mod.ProbablyPrime(1) {
		return true
	}

	left := make([]bool, i)
	right := make([]bool, i)
	v := new(big.Int)
	r := new(big.Int)
	for x := 0; x < i; x++ {
		v.SetInt64(int64(x))
		left[r.Mod(f.eq.Left(v), mod).Int64()] = true
		right[r.Mod(f.eq.Right(v), mod).Int64()] = true
	}

	for c := 0; c < i; c++ {
		if left[c] && right[c] {
			return true
		}
	}
	if f.verbose {
		log.Printf("there are no solutions mod %d", i)
	}
	return false
}
