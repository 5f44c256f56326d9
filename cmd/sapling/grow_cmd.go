package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	inputConfig
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{inputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a tree from the first rows of a set of data to predict the label on its first column, and print it.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			config.Logger().Info().Str("input", describeInput(config.dataInput)).Msg("reading rows")
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
			err = t.Fprint(os.Stdout, header)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
		},
	}
	config.addFlags(cmd, 0.8)
	return cmd
}
