package sweep

import (
	"fmt"

	"splitscan/utils"
)

// PrintBanner prints the scan configuration before the sweep starts.
func PrintBanner(cfg Config, nTrain, nTest int) {
	if !utils.Verbose {
		return
	}
	w := utils.Output
	fmt.Fprintln(w, "--------------------------------------------------------------------------------------------------------------")
	fmt.Fprintln(w, "Will scan through validation split values to explore the model performance as a function of this hyper parameter")
	fmt.Fprintln(w, "--------------------------------------------------------------------------------------------------------------")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input data MNIST")
	fmt.Fprintf(w, "MLP hidden layer configuration %v\n", cfg.Hidden)
	fmt.Fprintln(w, "Dropout value        = ", cfg.Dropout)
	fmt.Fprintln(w, "Leaky relu parameter = ", cfg.LeakySlope)
	fmt.Fprintln(w, "ValidationSplit      = ", cfg.Splits)
	fmt.Fprintln(w, "BatchSize            = ", cfg.BatchSize)
	fmt.Fprintln(w, "Nepochs              = ", cfg.Epochs)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "N(train)             = ", nTrain)
	fmt.Fprintln(w, "N(test)              = ", nTest)
	fmt.Fprintln(w, "Number of training iterations = ", len(cfg.Splits))
}

// PrintSummary prints the accuracy sequences followed by the loss sequences,
// each against the split fractions that produced them.
func PrintSummary(res *Results) {
	if !utils.Verbose {
		return
	}
	w := utils.Output
	fmt.Fprintln(w, "\nDisplay the evolution of the accuracy as a function of the validation sample fraction")
	fmt.Fprintln(w, "  ValidationSplit     = ", res.Splits)
	fmt.Fprintln(w, "  accuracy (train)    = ", res.Acc)
	fmt.Fprintln(w, "  accuracy (validate) = ", res.ValAcc)
	fmt.Fprintln(w, "\nDisplay the evolution of the loss as a function of the validation sample fraction")
	fmt.Fprintln(w, "  ValidationSplit     = ", res.Splits)
	fmt.Fprintln(w, "  loss (train)        = ", res.Loss)
	fmt.Fprintln(w, "  loss (validate)     = ", res.ValLoss)
}
