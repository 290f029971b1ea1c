package utils

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Verbose controls whether progress and timing output is printed.
// Set to false to suppress output.
var Verbose = true

// Output is the writer where progress and timing output is printed.
// Defaults to os.Stdout.
var Output io.Writer = os.Stdout

// SweepStats holds timing information for the phases of a scan.
type SweepStats struct {
	TotalTime    time.Duration
	DataLoadTime time.Duration
	TrainTime    time.Duration
	PlotTime     time.Duration
	Runs         int
}

// PrintSweepStats prints a timing breakdown of the scan.
// Respects the Verbose flag - does nothing if Verbose is false.
func PrintSweepStats(stats *SweepStats) {
	if !Verbose {
		return
	}
	fmt.Fprintln(Output, "\n=== TIMING STATISTICS ===")
	fmt.Fprintf(Output, "Total time: %v\n", stats.TotalTime)
	fmt.Fprintf(Output, "Training runs: %d\n", stats.Runs)
	fmt.Fprintf(Output, "  Data loading: %v (%.1f%%)\n", stats.DataLoadTime, percentOf(stats.DataLoadTime, stats.TotalTime))
	fmt.Fprintf(Output, "  Training:     %v (%.1f%%)\n", stats.TrainTime, percentOf(stats.TrainTime, stats.TotalTime))
	fmt.Fprintf(Output, "  Plotting:     %v (%.1f%%)\n", stats.PlotTime, percentOf(stats.PlotTime, stats.TotalTime))
	if stats.Runs > 0 {
		fmt.Fprintf(Output, "Average time per run: %v\n", stats.TrainTime/time.Duration(stats.Runs))
	}
}

func percentOf(part, total time.Duration) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// DurationUS converts any time.Duration to micro-seconds as float64
func DurationUS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000.0
}
