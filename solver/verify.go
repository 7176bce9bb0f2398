package solver

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Verify recomputes both sides of the equation with decimal arithmetic and
// reports whether (x, y) really is a solution. It shares no arithmetic with
// Left and Right, so the two paths cross-check each other.
func Verify(e Equation, x, y *big.Int) bool {
	left := decimalSide(e.lMult, e.lPow, e.lAdd, x)
	right := decimalSide(e.rMult, e.rPow, e.rAdd, y)
	return left.Equal(right)
}

func decimalSide(mult *big.Int, pow int, add *big.Int, v *big.Int) decimal.Decimal {
	z := decimal.NewFromBigInt(v, 0).Pow(decimal.NewFromInt(int64(pow)))
	return z.Mul(decimal.NewFromBigInt(mult, 0)).Add(decimal.NewFromBigInt(add, 0))
}
