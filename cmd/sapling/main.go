package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sapling",
		Short: "sapling is a tool to grow binary decision trees",
		Long:  `A tool to grow binary decision trees from tabular data, test them, and use them to classify rows`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log the development of every node to STDERR")
	rootCmd.AddCommand(versionCmd(), growCmd(config), testCmd(config), predictCmd(config))
	return rootCmd
}
