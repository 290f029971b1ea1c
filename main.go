// splitscan trains the same MLP on MNIST once per validation-split fraction
// and plots how the final-epoch metrics respond to that hyperparameter.
//
// Usage:
//
//	splitscan --data=data --fig=fig --epochs=50 --batch=20
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"splitscan/figures"
	"splitscan/mnist"
	"splitscan/sweep"
	"splitscan/utils"
)

var (
	dataDir      = flag.String("data", "data", "Directory containing mnist_train.csv and mnist_test.csv")
	figDir       = flag.String("fig", "fig", "Directory the figures are written to (must exist)")
	splitList    = flag.String("splits", "0.01,0.1,0.2,0.3,0.4,0.5,0.6,0.7,0.8,0.9", "Comma-separated validation split fractions, scanned in order")
	batchSize    = flag.Int("batch", 20, "Batch size")
	epochs       = flag.Int("epochs", 50, "Number of training epochs per run")
	dropout      = flag.Float64("dropout", 0.6, "Dropout probability")
	learningRate = flag.Float64("lr", 0.001, "Adam learning rate")
	seed         = flag.Uint64("seed", 42, "Random seed")
	resultsFile  = flag.String("results", "", "Optional JSON file to save the scan results to")
	verbose      = flag.Bool("verbose", true, "Verbose output")
)

func main() {
	flag.Parse()
	utils.Verbose = *verbose

	splits, err := parseSplits(*splitList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parsing splits: %s\n", err.Error())
		os.Exit(1)
	}

	cfg := sweep.DefaultConfig()
	cfg.Splits = splits
	cfg.BatchSize = *batchSize
	cfg.Epochs = *epochs
	cfg.Dropout = *dropout
	cfg.LearningRate = *learningRate
	cfg.Seed = *seed
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %s\n", err.Error())
		os.Exit(1)
	}

	stats := &utils.SweepStats{Runs: len(cfg.Splits)}
	totalStart := time.Now()

	start := time.Now()
	ds, err := mnist.Load(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading dataset: %s\n", err.Error())
		os.Exit(1)
	}
	stats.DataLoadTime = time.Since(start)

	sweep.PrintBanner(cfg, len(ds.TrainLabels), len(ds.TestLabels))

	// The scan carves its validation subsets out of the training set only;
	// the test set is held out and stays unused here.
	start = time.Now()
	res, err := sweep.Run(cfg, ds.TrainImages, ds.TrainLabels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "running scan: %s\n", err.Error())
		os.Exit(1)
	}
	stats.TrainTime = time.Since(start)

	sweep.PrintSummary(res)

	if *resultsFile != "" {
		if err := sweep.SaveResults(*resultsFile, res); err != nil {
			fmt.Fprintf(os.Stderr, "saving results: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Saved scan results to %s\n", *resultsFile)
	}

	start = time.Now()
	fmt.Printf("Plotting the output to %s.*\n", *figDir+"/"+figures.AccuracyBaseName)
	if _, err := figures.SaveAccuracy(*figDir, res.Splits, res.Acc, res.ValAcc); err != nil {
		fmt.Fprintf(os.Stderr, "plotting accuracy: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("Plotting the output to %s.*\n", *figDir+"/"+figures.LossBaseName)
	if _, err := figures.SaveLoss(*figDir, res.Splits, res.Loss, res.ValLoss); err != nil {
		fmt.Fprintf(os.Stderr, "plotting loss: %s\n", err.Error())
		os.Exit(1)
	}
	stats.PlotTime = time.Since(start)

	stats.TotalTime = time.Since(totalStart)
	utils.PrintSweepStats(stats)

	fmt.Println("\nValidation sample fraction scan done")
}

func parseSplits(list string) ([]float64, error) {
	parts := strings.Split(list, ",")
	splits := make([]float64, len(parts))
	for i, s := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, err
		}
		splits[i] = v
	}
	return splits, nil
}
