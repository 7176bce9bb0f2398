package solver

import "math/big"

// Bezout reports whether gcd(A, C) divides B − D. Any integer solution
// makes A·x^n − C·y^m = D − B an integer combination of A and C, so by
// Bézout's identity the gcd must divide it. A false return proves the
// equation has no solutions; a true return proves nothing.
func Bezout(e Equation) bool {
	g := new(big.Int).GCD(nil, nil, e.lMult, e.rMult)
	k := new(big.Int).Sub(e.lAdd, e.rAdd)
	return k.Mod(k, g).Sign() == 0
}
