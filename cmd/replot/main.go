// replot regenerates the two comparison figures from a saved scan results
// JSON file, without retraining anything.
package main

import (
	"flag"
	"fmt"
	"os"

	"splitscan/figures"
	"splitscan/sweep"
)

var (
	resultsFile = flag.String("results", "results.json", "Scan results JSON file")
	figDir      = flag.String("fig", "fig", "Directory the figures are written to (must exist)")
)

func main() {
	flag.Parse()

	res, err := sweep.LoadResults(*resultsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading results: %s\n", err.Error())
		os.Exit(1)
	}

	paths, err := figures.SaveAccuracy(*figDir, res.Splits, res.Acc, res.ValAcc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "plotting accuracy: %s\n", err.Error())
		os.Exit(1)
	}
	lossPaths, err := figures.SaveLoss(*figDir, res.Splits, res.Loss, res.ValLoss)
	if err != nil {
		fmt.Fprintf(os.Stderr, "plotting loss: %s\n", err.Error())
		os.Exit(1)
	}

	for _, p := range append(paths, lossPaths...) {
		fmt.Println("Wrote", p)
	}
}
