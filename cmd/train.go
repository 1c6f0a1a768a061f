package cmd

import "github.com/spf13/cobra"

func newTrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: `Trains the network and saves it based on the data in the "data" directory`,
		Args:  cobra.NoArgs,
		Run:   func(cmd *cobra.Command, args []string) {},
	}
}

func newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test <network config>",
		Short: "Tests the saved data based on the passed in config generated by train",
		Args:  cobra.ExactArgs(1),
		Run:   func(cmd *cobra.Command, args []string) {},
	}
}
