package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/solver"
)

type solveArgs struct {
	linearConflict bool
	twinRace       bool
	parentSkip     bool
}

func newSolveCmd() *cobra.Command {
	var args solveArgs

	solveCmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Find a shortest move sequence for a puzzle file",
		Long: `Reads a puzzle description (side length followed by the tile grid,
whitespace separated, 0 marking the blank) and runs A* search.

    $ npuzzle solve puzzle3x3.txt --linear-conflict
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			return solveFunc(positional[0], args)
		},
	}

	solveCmd.Flags().BoolVar(&args.linearConflict, "linear-conflict", false, "strengthen the heuristic with linear conflicts")
	solveCmd.Flags().BoolVar(&args.twinRace, "twin-race", false, "detect unsolvable inputs by racing the twin board instead of the parity check")
	solveCmd.Flags().BoolVar(&args.parentSkip, "parent-skip", false, "replace the visited set with parent-only skipping (lower memory, more expansions)")

	return solveCmd
}

func solveFunc(path string, args solveArgs) error {
	f, err := os.Open(path)
	if err != nil {
		log.Errorf("open %s: %v", path, err)
		return err
	}
	defer f.Close()

	b, err := board.Read(f)
	if err != nil {
		log.Errorf("parse %s: %v", path, err)
		return err
	}

	var opts []solver.Option
	if args.linearConflict {
		opts = append(opts, solver.WithLinearConflict())
	}
	if args.twinRace {
		opts = append(opts, solver.WithTwinRace())
	}
	if args.parentSkip {
		opts = append(opts, solver.WithParentSkipOnly())
	}

	start := time.Now()
	res, err := solver.Solve(b, opts...)
	if err != nil {
		log.Errorf("solve %s: %v", path, err)
		return err
	}
	log.Debugf("solved %s in %s, %d nodes expanded", path, time.Since(start), res.Expanded())

	if !res.Solvable() {
		fmt.Println("No solution possible")
		return nil
	}
	fmt.Printf("Minimum number of moves = %d\n", res.Moves())
	for _, step := range res.Solution() {
		fmt.Println(step)
	}
	return nil
}
