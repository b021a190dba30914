// Command simplex solves a linear program with the tableau simplex method and
// prints every step: each tableau with its pivot, the normalization of the
// pivot row, each row elimination, the final tableau and the solution.
//
//	simplex solve -o "5x1 + 2x2" -c "10x1 + 12x2 <= 60" -c "2x1 + x2 <= 6"
//	simplex solve --example ex3 --decimals 2
//	simplex examples
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
