package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pbanos/sapling/dataset/inputsample"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/tree"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	inputConfig
}

type stdoutFeatureValueRequester struct{}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{inputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a label for a row answering questions",
		Long:  `Grow a tree from a set of data and use it to predict the label of a row answering a reduced set of questions about its features`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if config.dataInput == "" {
				fmt.Fprintln(os.Stderr, "required input flag was not set: STDIN is used to answer questions")
				os.Exit(1)
			}
			ctx := context.Background()
			train, _, header, err := config.trainingSets(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t, err := config.grower().Grow(ctx, train)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(3)
			}
			sample := inputsample.New(os.Stdin, header, train.Kinds(), stdoutFeatureValueRequester{})
			counts, err := t.Classify(sample)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			fmt.Printf("Predicted labels along their probabilities are %v\n", tree.FormatAsProbabilities(counts))
		},
	}
	config.addFlags(cmd, 1)
	return cmd
}

func (stdoutFeatureValueRequester) RequestValueFor(name string, kind feature.Kind) error {
	if kind == feature.KindNumeric {
		fmt.Printf("Please provide the row's %s:\n(valid values are real numbers)\n", name)
		return nil
	}
	fmt.Printf("Please provide the row's %s:\n", name)
	return nil
}

func (stdoutFeatureValueRequester) RejectValueFor(name string, kind feature.Kind, value string) error {
	fmt.Printf("%q is not a valid value for the row's %s. Please provide a %s value.\n", value, name, kind)
	return nil
}
