package main

import (
	"diophantine/common"
	"flag"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

/*
Brute-force check of Ax^n + B = Cy^m + D by direct enumeration, the slow
twin of the bracketing engine in the solver package.

Both sides are increasing in their variable, so one x cursor walks upward as
y does: for each y the cursor advances until the left side reaches or passes
the target. Every value on both sides gets evaluated exactly once, with
decimal arithmetic throughout. Far too slow for real exploration, but an
independent path for sanity-checking the fast engine on small limits.
*/
func main() {
	a := flag.Int64("A", 6, "Multiplier A of the x side")
	n := flag.Int64("n", 2, "Power n of the x side")
	b := flag.Int64("B", 2, "Constant B of the x side")
	c := flag.Int64("C", 2, "Multiplier C of the y side")
	m := flag.Int64("m", 3, "Power m of the y side")
	d := flag.Int64("D", 0, "Constant D of the y side")
	limitString := flag.String("limit", "10_000", "Maximum value of y to try. Can use M, G, T, P and E as powers of ten")
	verbose := flag.Bool("verbose", false, "verbose output")
	flag.Parse()

	limit := common.DecodeLimit(limitString, verbose)

	lMult := decimal.NewFromInt(*a)
	lPow := decimal.NewFromInt(*n)
	lAdd := decimal.NewFromInt(*b)
	rMult := decimal.NewFromInt(*c)
	rPow := decimal.NewFromInt(*m)
	rAdd := decimal.NewFromInt(*d)

	left := func(x int64) decimal.Decimal {
		return decimal.NewFromInt(x).Pow(lPow).Mul(lMult).Add(lAdd)
	}
	right := func(y int64) decimal.Decimal {
		return decimal.NewFromInt(y).Pow(rPow).Mul(rMult).Add(rAdd)
	}

	solutions := 0
	t0 := time.Now()
	x := int64(2)
	lExpr := left(x)
	for y := int64(2); y <= int64(limit); y++ {
		target := right(y)
		for lExpr.LessThan(target) {
			x++
			lExpr = left(x)
		}
		if lExpr.Equal(target) {
			solutions++
			log.Printf("solution: x=%d, y=%d", x, y)
		}

		if *verbose && y%1_000_000 == 0 {
			t := time.Since(t0).Seconds()
			rate := float64(y) / t
			log.Printf(
				"%6dM candidates tried, %d solutions found, %.3fs remaining",
				y/1_000_000,
				solutions,
				float64(int64(limit)-y)/rate,
			)
		}
	}
	log.Printf("%d solutions up to y=%d", solutions, limit)
}
