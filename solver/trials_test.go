package solver

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBracketSearchExact(t *testing.T) {
	// x² = y² with y = 5 must land on x = 5 exactly
	eq, err := NewFromInts(1, 2, 0, 1, 2, 0)
	assert.NoError(t, err)

	x, carry, probes := bracketSearch(eq, eq.Right(big.NewInt(5)), nil)
	assert.NotNil(t, x)
	assert.Equal(t, "5", x.String())
	assert.NotNil(t, carry)
	assert.True(t, probes > 0)

	// 26 is not a square: the bracket must converge without a false positive
	x, carry, _ = bracketSearch(eq, big.NewInt(26), nil)
	assert.Nil(t, x)
	assert.Equal(t, "5", carry.String())
}

func TestBracketSearchFirstProbeOvershoot(t *testing.T) {
	// left(2) = 18 already exceeds a target of 2, so the y is abandoned
	eq, err := NewFromInts(1, 3, 10, 1, 1, 0)
	assert.NoError(t, err)

	x, carry, probes := bracketSearch(eq, big.NewInt(2), nil)
	assert.Nil(t, x)
	assert.Nil(t, carry)
	assert.Equal(t, uint64(1), probes)
}

func TestBracketSearchCarriedMin(t *testing.T) {
	eq, err := NewFromInts(1, 2, 0, 1, 2, 0)
	assert.NoError(t, err)

	// a min carried from a smaller target must not change the outcome
	x, carry, _ := bracketSearch(eq, eq.Right(big.NewInt(50)), big.NewInt(30))
	assert.NotNil(t, x)
	assert.Equal(t, "50", x.String())
	assert.True(t, carry.Cmp(big.NewInt(30)) >= 0)
}

func TestSolveSquares(t *testing.T) {
	// x² = y² finds x = y for every tested y
	eq, err := NewFromInts(1, 2, 0, 1, 2, 0)
	assert.NoError(t, err)

	s := NewTrialSolver(eq)
	s.SetVerbose(false)
	assert.NoError(t, s.SetLimit(10))
	assert.True(t, s.Solve())

	solutions := s.Solutions()
	assert.Equal(t, 9, len(solutions))
	for i, sol := range solutions {
		assert.Equal(t, int64(i+2), sol.X.Int64())
		assert.Zero(t, sol.X.Cmp(sol.Y))
	}
}

func TestSolveCubeSquareMatches(t *testing.T) {
	// x² = y³ has solutions exactly at y = k²; then x = k³
	eq, err := NewFromInts(1, 2, 0, 1, 3, 0)
	assert.NoError(t, err)

	s := NewTrialSolver(eq)
	s.SetVerbose(false)
	assert.NoError(t, s.SetLimit(100))
	assert.True(t, s.Solve())

	solutions := s.Solutions()
	assert.Equal(t, 9, len(solutions)) // k = 2..10
	for i, sol := range solutions {
		k := int64(i + 2)
		assert.Equal(t, k*k, sol.Y.Int64())
		assert.Equal(t, k*k*k, sol.X.Int64())
		assert.True(t, Verify(eq, sol.X, sol.Y))
	}

	// solutions come out in ascending x
	for i := 1; i < len(solutions); i++ {
		assert.True(t, solutions[i-1].X.Cmp(solutions[i].X) < 0)
	}
}

func TestCarryForwardMatchesFreshSearch(t *testing.T) {
	// rerunning every y with a fresh bracket must find the same solutions
	// the carried-forward min does
	eq, err := NewFromInts(1, 2, 0, 1, 3, 0)
	assert.NoError(t, err)

	s := NewTrialSolver(eq)
	s.SetVerbose(false)
	assert.NoError(t, s.SetLimit(200))
	assert.True(t, s.Solve())

	fresh := []Solution{}
	for y := int64(2); y <= 200; y++ {
		yb := big.NewInt(y)
		if x, _, _ := bracketSearch(eq, eq.Right(yb), nil); x != nil {
			fresh = append(fresh, Solution{X: x, Y: yb})
		}
	}

	got := s.Solutions()
	assert.Equal(t, len(fresh), len(got))
	for i := range fresh {
		assert.Zero(t, fresh[i].X.Cmp(got[i].X))
		assert.Zero(t, fresh[i].Y.Cmp(got[i].Y))
	}
}

func TestSolveIdempotent(t *testing.T) {
	eq, err := NewFromInts(1, 2, 0, 1, 3, 0)
	assert.NoError(t, err)

	s := NewTrialSolver(eq)
	s.SetVerbose(false)
	assert.NoError(t, s.SetLimit(50))

	assert.True(t, s.Solve())
	first := s.Solutions()
	y1, x1 := s.Trials()

	assert.True(t, s.Solve())
	second := s.Solutions()
	y2, x2 := s.Trials()

	assert.Equal(t, y1, y2)
	assert.Equal(t, x1, x2)
	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Zero(t, first[i].X.Cmp(second[i].X))
		assert.Zero(t, first[i].Y.Cmp(second[i].Y))
	}
}

func TestStopAtFirst(t *testing.T) {
	eq, err := NewFromInts(1, 2, 0, 1, 2, 0)
	assert.NoError(t, err)

	s := NewTrialSolver(eq)
	s.SetVerbose(false)
	s.SetStopAtFirst(true)
	assert.NoError(t, s.SetLimit(100))
	assert.True(t, s.Solve())
	assert.Equal(t, 1, len(s.Solutions()))
	assert.Equal(t, int64(2), s.Solutions()[0].Y.Int64())
}

func TestLimitBoundary(t *testing.T) {
	eq, err := NewFromInts(1, 1, 0, 1, 1, 0)
	assert.NoError(t, err)

	s := NewTrialSolver(eq)
	assert.ErrorIs(t, s.SetLimit(1), ErrInvalidConfiguration)
	assert.ErrorIs(t, s.SetLimit(0), ErrInvalidConfiguration)

	// limit 2 tests exactly y = 2
	s.SetVerbose(false)
	assert.NoError(t, s.SetLimit(2))
	assert.True(t, s.Solve())
	solutions := s.Solutions()
	assert.Equal(t, 1, len(solutions))
	assert.Equal(t, int64(2), solutions[0].X.Int64())
	assert.Equal(t, int64(2), solutions[0].Y.Int64())
}

func TestSetModuliValidation(t *testing.T) {
	eq, err := NewFromInts(1, 2, 0, 1, 3, 0)
	assert.NoError(t, err)

	s := NewTrialSolver(eq)
	assert.ErrorIs(t, s.SetModuli(nil), ErrInvalidConfiguration)
	assert.ErrorIs(t, s.SetModuli([]int{840, 1}), ErrInvalidConfiguration)

	// a custom modulus list must not change what is found
	s.SetVerbose(false)
	assert.NoError(t, s.SetModuli([]int{4, 9}))
	assert.NoError(t, s.SetLimit(100))
	assert.True(t, s.Solve())
	assert.Equal(t, 9, len(s.Solutions()))
}

func TestResidueScreenSkipsHopelessCandidates(t *testing.T) {
	// 6x² + 2 = 2y³ has no solutions; the screen must discard most y values
	// before any bracketing happens
	eq, err := NewFromInts(6, 2, 2, 2, 3, 0)
	assert.NoError(t, err)

	s := NewTrialSolver(eq)
	s.SetVerbose(false)
	assert.NoError(t, s.SetLimit(10_000))
	assert.False(t, s.Solve())
	assert.Empty(t, s.Solutions())

	yTrials, xTrials := s.Trials()
	assert.True(t, yTrials < 9_999, "screen searched %d of 9999 candidates", yTrials)
	assert.True(t, xTrials >= yTrials)
}

func TestResidueTableMatchesDirectCheck(t *testing.T) {
	eq, err := NewFromInts(6, 2, 2, 2, 3, 0)
	assert.NoError(t, err)

	table := newResidueTable(eq, []int{7})
	// left residues mod 7: 6x²+2 for x = 0..6 → {2, 1, 5, 0}
	for v := int64(0); v < 7; v++ {
		want := false
		for x := int64(0); x < 7; x++ {
			if (6*x*x+2)%7 == v {
				want = true
			}
		}
		assert.Equal(t, want, table.canMatch(big.NewInt(v)), "residue %d", v)
	}
	// residues only depend on the value mod 7
	assert.Equal(t, table.canMatch(big.NewInt(1)), table.canMatch(big.NewInt(8)))
}

func TestVerify(t *testing.T) {
	eq, err := NewFromInts(1, 2, 0, 1, 3, 0)
	assert.NoError(t, err)

	assert.True(t, Verify(eq, big.NewInt(8), big.NewInt(4)))
	assert.True(t, Verify(eq, big.NewInt(27), big.NewInt(9)))
	assert.False(t, Verify(eq, big.NewInt(8), big.NewInt(5)))
	assert.False(t, Verify(eq, big.NewInt(9), big.NewInt(4)))
}
