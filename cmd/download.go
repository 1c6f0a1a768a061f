package cmd

import (
	"github.com/juice-examples/juice-mnist/internal/dataset"
	"github.com/juice-examples/juice-mnist/internal/utils"
	"github.com/spf13/cobra"
)

// newFetcher is swapped in tests to avoid the network.
var newFetcher = func(cfg utils.HTTPClientConfig) *dataset.Fetcher {
	return dataset.NewFetcher(utils.NewMnistHTTPClient(cfg))
}

func newDownloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "download <directory>",
		Short: "Downloads the datasets",
		Long: `Downloads the four MNIST archives into an existing directory and
writes the decompressed files next to them.

Examples:
  juice_mnist download ./data`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			directory := ""
			if len(args) > 0 {
				directory = args[0]
			}
			return newFetcher(globalHTTPConfig).FetchAll(cmd.Context(), directory)
		},
	}
}
