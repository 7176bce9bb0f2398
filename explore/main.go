package main

import (
	"diophantine/common"
	"diophantine/solver"
	"flag"
	"fmt"
	"log"

	"golang.org/x/text/message"
)

/*
Explores a single generalized Diophantine equation Ax^n + B = Cy^m + D
with A, C, n, m > 0, e.g. 6x^2 + 2 = 2y^3 (which has no solutions).

Two cheap disproofs run before any real work: Bézout's identity on the
constant terms, and a scan for a modulus where the two sides can never be
congruent. Only if neither rules the equation out does the trial search run,
testing every y up to the limit with a bracketing search for a matching x.
Candidate y values are screened first against precomputed residue tables so
that most hopeless targets cost three table lookups instead of a search.
*/
func main() {
	a := flag.Int64("A", 6, "Multiplier A of the x side")
	n := flag.Int("n", 2, "Power n of the x side")
	b := flag.Int64("B", 2, "Constant B of the x side")
	c := flag.Int64("C", 2, "Multiplier C of the y side")
	m := flag.Int("m", 3, "Power m of the y side")
	d := flag.Int64("D", 0, "Constant D of the y side")
	limitString := flag.String("limit", "1M", "Maximum value of y to try. Can use M, G, T, P and E as powers of ten")
	maxModulus := flag.Int("maxmod", 561, "Exclusive upper bound for the modulus scan")
	onlyPrime := flag.Bool("primes", false, "Scan only prime moduli")
	moduliString := flag.String("moduli", "", "Comma-separated screening moduli (default 840,1104,2431)")
	stopAtFirst := flag.Bool("first", false, "Stop at the first solution found")
	verbose := flag.Bool("verbose", true, "verbose output")
	flag.Parse()

	limit := common.DecodeLimit(limitString, verbose)

	eq, err := solver.NewFromInts(*a, *n, *b, *c, *m, *d)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Equation: %s\n", eq)

	if !solver.Bezout(eq) {
		fmt.Println("No solutions by Bezout's identity")
		return
	}

	filter := solver.NewModuliFilter(eq)
	filter.SetOnlyPrime(*onlyPrime)
	filter.SetVerbose(*verbose)
	if err := filter.SetMaxModulus(*maxModulus); err != nil {
		log.Fatal(err)
	}
	if !filter.Possible() {
		fmt.Printf("No solutions mod %d\n", filter.Witness())
		return
	}

	trials := solver.NewTrialSolver(eq)
	trials.SetStopAtFirst(*stopAtFirst)
	trials.SetVerbose(*verbose)
	if err := trials.SetLimit(limit); err != nil {
		log.Fatal(err)
	}
	if moduli := common.DecodeModuli(moduliString); moduli != nil {
		if err := trials.SetModuli(moduli); err != nil {
			log.Fatal(err)
		}
	}

	p := message.NewPrinter(message.MatchLanguage("en"))
	if *verbose {
		moduli := trials.Moduli()
		for i, count := range trials.LeftResidueCounts() {
			_, _ = p.Printf("left side has %d reachable residues mod %d\n", count, moduli[i])
		}
	}

	found := trials.Solve()
	yTrials, xTrials := trials.Trials()
	_, _ = p.Printf("Trials: %d x probes for %d y candidates, %.1f s\n",
		xTrials, yTrials, trials.Elapsed().Seconds())

	if !found {
		_, _ = p.Printf("No solution up to y=%d\n", limit)
		return
	}
	for _, sol := range trials.Solutions() {
		if !solver.Verify(eq, sol.X, sol.Y) {
			log.Fatalf("cross-check failed for x=%s, y=%s", sol.X, sol.Y)
		}
	}
	_, _ = p.Printf("%d solutions found and cross-checked\n", len(trials.Solutions()))
}
