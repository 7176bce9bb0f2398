package solver

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidEquation is returned when an equation is constructed with a
	// non-positive multiplier or power.
	ErrInvalidEquation = errors.New("invalid equation")
	// ErrInvalidConfiguration is returned when a solver option is set to a
	// value outside its valid domain.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Equation describes a generalized Diophantine equation
//
//	A·x^n + B = C·y^m + D
//
// with A, C, n, m > 0. The powers and multipliers are ordinary ints; the
// constant terms and every candidate x and y are big integers, so evaluating
// either side can never overflow. An Equation is immutable once built.
type Equation struct {
	lMult *big.Int
	lPow  int
	lAdd  *big.Int
	rMult *big.Int
	rPow  int
	rAdd  *big.Int
}

// New builds the equation a·x^n + b = c·y^m + d. The multipliers a, c and
// the powers n, m must be positive.
func New(a int64, n int, b *big.Int, c int64, m int, d *big.Int) (Equation, error) {
	if n <= 0 || m <= 0 {
		return Equation{}, fmt.Errorf("%w: powers (x^n, y^m) must be positive", ErrInvalidEquation)
	}
	if a <= 0 || c <= 0 {
		return Equation{}, fmt.Errorf("%w: multipliers (A·x^n, C·y^m) must be positive", ErrInvalidEquation)
	}
	return Equation{
		lMult: big.NewInt(a),
		lPow:  n,
		lAdd:  new(big.Int).Set(b),
		rMult: big.NewInt(c),
		rPow:  m,
		rAdd:  new(big.Int).Set(d),
	}, nil
}

// NewFromInts is New for equations whose constant terms fit in an int64.
func NewFromInts(a int64, n int, b int64, c int64, m int, d int64) (Equation, error) {
	return New(a, n, big.NewInt(b), c, m, big.NewInt(d))
}

// Left evaluates the x side, A·x^n + B.
func (e Equation) Left(x *big.Int) *big.Int {
	z := new(big.Int).Exp(x, big.NewInt(int64(e.lPow)), nil)
	return z.Mul(z, e.lMult).Add(z, e.lAdd)
}

// Right evaluates the y side, C·y^m + D.
func (e Equation) Right(y *big.Int) *big.Int {
	z := new(big.Int).Exp(y, big.NewInt(int64(e.rPow)), nil)
	return z.Mul(z, e.rMult).Add(z, e.rAdd)
}

// String renders the equation the way it would be written by hand,
// e.g. "6x^2 + 3 = 5y^3 - 1". Unit multipliers, first powers and zero
// constant terms are omitted.
func (e Equation) String() string {
	return side(e.lMult, "x", e.lPow, e.lAdd) + " = " + side(e.rMult, "y", e.rPow, e.rAdd)
}

func side(mult *big.Int, variable string, pow int, add *big.Int) string {
	s := ""
	if mult.Cmp(one) != 0 {
		s = mult.String()
	}
	s += variable
	if pow != 1 {
		s += fmt.Sprintf("^%d", pow)
	}
	switch add.Sign() {
	case 1:
		s += " + " + add.String()
	case -1:
		s += " - " + new(big.Int).Abs(add).String()
	}
	return s
}
