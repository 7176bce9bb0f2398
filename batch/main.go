package main

import (
	"diophantine/common"
	"diophantine/solver"
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/text/message"
)

/*
Scans a family of equations Ax^n + b = Cy^m + D, varying the constant term b
from 1 up to a bound. Each equation runs through the cheap disproofs first
(Bézout's identity, then the modulus scan); only the survivors get the trial
search. This is the typical exploration workflow: most members of a family
die in the filters for pennies, and compute is spent only where an actual
solution might exist.
*/
func main() {
	a := flag.Int64("A", 6, "Multiplier A of the x side")
	n := flag.Int("n", 2, "Power n of the x side")
	bMax := flag.Int64("bmax", 100, "Scan constants b = 1..bmax")
	c := flag.Int64("C", 1, "Multiplier C of the y side")
	m := flag.Int("m", 3, "Power m of the y side")
	d := flag.Int64("D", 0, "Constant D of the y side")
	limitString := flag.String("limit", "1M", "Maximum value of y to try. Can use M, G, T, P and E as powers of ten")
	maxModulus := flag.Int("maxmod", 250, "Exclusive upper bound for the modulus scan")
	verbose := flag.Bool("verbose", false, "verbose output")
	flag.Parse()

	limit := common.DecodeLimit(limitString, verbose)

	var byBezout, byModuli, searched, solved int
	t0 := time.Now()
	for b := int64(1); b <= *bMax; b++ {
		eq, err := solver.NewFromInts(*a, *n, b, *c, *m, *d)
		if err != nil {
			log.Fatal(err)
		}

		if !solver.Bezout(eq) {
			byBezout++
			continue
		}

		filter := solver.NewModuliFilter(eq)
		filter.SetVerbose(*verbose)
		if err := filter.SetMaxModulus(*maxModulus); err != nil {
			log.Fatal(err)
		}
		if !filter.Possible() {
			byModuli++
			if *verbose {
				log.Printf("%s: no solutions mod %d", eq, filter.Witness())
			}
			continue
		}

		searched++
		trials := solver.NewTrialSolver(eq)
		trials.SetVerbose(*verbose)
		if err := trials.SetLimit(limit); err != nil {
			log.Fatal(err)
		}
		if trials.Solve() {
			solved++
			for _, sol := range trials.Solutions() {
				fmt.Printf("%s: x=%s, y=%s\n", eq, sol.X, sol.Y)
			}
		}
	}

	p := message.NewPrinter(message.MatchLanguage("en"))
	_, _ = p.Printf("%d equations: %d ruled out by Bezout, %d by moduli, %d searched, %d with solutions\n",
		*bMax, byBezout, byModuli, searched, solved)
	_, _ = p.Printf("total time %.1f s\n", time.Since(t0).Seconds())
}
