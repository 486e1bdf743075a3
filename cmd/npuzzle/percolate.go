package main

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/npuzzle/percolation"
)

func newPercolateCmd() *cobra.Command {
	var seed int64

	percolateCmd := &cobra.Command{
		Use:   "percolate N TRIALS",
		Short: "Estimate the percolation threshold by Monte Carlo simulation",
		Long: `Runs TRIALS independent percolation experiments on an N-by-N grid and
reports the sample mean, standard deviation and 95% confidence interval
of the percolation threshold.

    $ npuzzle percolate 200 100
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				log.Errorf("grid size %q: %v", args[0], err)
				return err
			}
			trials, err := strconv.Atoi(args[1])
			if err != nil {
				log.Errorf("trial count %q: %v", args[1], err)
				return err
			}
			return percolateFunc(n, trials, seed)
		},
	}

	percolateCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 selects the fixed default)")

	return percolateCmd
}

func percolateFunc(n, trials int, seed int64) error {
	stats, err := percolation.EstimateThreshold(n, trials, percolation.WithSeed(seed))
	if err != nil {
		log.Errorf("estimate threshold: %v", err)
		return err
	}
	fmt.Printf("mean                    = %f\n", stats.Mean())
	fmt.Printf("stddev                  = %f\n", stats.Stddev())
	fmt.Printf("95%% confidence interval = [%f, %f]\n", stats.ConfidenceLo(), stats.ConfidenceHi())
	return nil
}
