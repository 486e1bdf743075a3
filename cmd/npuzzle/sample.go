package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/npuzzle/randqueue"
)

func newSampleCmd() *cobra.Command {
	var seed int64

	sampleCmd := &cobra.Command{
		Use:   "sample K",
		Short: "Print K tokens sampled uniformly from stdin",
		Long: `Reads whitespace-separated tokens from standard input and prints K of
them, chosen uniformly at random without replacement.

    $ echo "A B C D E F G H I" | npuzzle sample 3
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.Atoi(args[0])
			if err != nil {
				log.Errorf("sample size %q: %v", args[0], err)
				return err
			}
			return sampleFunc(os.Stdin, k, seed)
		},
	}

	sampleCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 selects the fixed default)")

	return sampleCmd
}

func sampleFunc(in io.Reader, k int, seed int64) error {
	q := randqueue.New[string](randqueue.WithSeed(seed))

	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		q.Enqueue(sc.Text())
	}
	if err := sc.Err(); err != nil {
		log.Errorf("read stdin: %v", err)
		return err
	}
	if k < 0 || k > q.Len() {
		err := fmt.Errorf("sample size %d out of range for %d tokens", k, q.Len())
		log.Error(err.Error())
		return err
	}

	for i := 0; i < k; i++ {
		tok, err := q.Dequeue()
		if err != nil {
			return err
		}
		fmt.Println(tok)
	}
	return nil
}
