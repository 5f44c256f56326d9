package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/tree"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	inputConfig
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{inputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from the first rows of a set of data and test it against the remaining rows, printing the prediction for each of them.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			config.Logger().Info().Str("input", describeInput(config.dataInput)).Msg("reading rows")
			train, test, _, err := config.trainingSets(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t, err := config.grower().Grow(ctx, train)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(3)
			}
			err = printPredictions(os.Stdout, t, test)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(4)
			}
			successRate, err := t.Test(test)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(5)
			}
			fmt.Printf("%f success rate over %d rows\n", successRate, test.Count())
		},
	}
	config.addFlags(cmd, 0.8)
	return cmd
}

// printPredictions writes the actual label and the predicted
// probabilities for every row of the dataset.
func printPredictions(w io.Writer, t *tree.Tree, ds *dataset.Dataset) error {
	for _, r := range ds.Rows() {
		counts, err := t.Classify(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "Actual: %v. Predicted: %v\n", r.Label(), tree.FormatAsProbabilities(counts))
		if err != nil {
			return err
		}
	}
	return nil
}
