package cmd

import (
	"os"
	"time"

	"github.com/juice-examples/juice-mnist/internal/output"
	"github.com/juice-examples/juice-mnist/internal/utils"
	"github.com/spf13/cobra"
)

var (
	timeout          time.Duration
	kaTimeout        time.Duration
	userAgent        string
	proxyURL         string
	proxyUsername    string
	proxyPassword    string
	headers          []string
	debug            bool
	globalHTTPConfig utils.HTTPClientConfig
)

var MnistVersion = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "juice_mnist",
		Short: "Juice MNIST Example",
		Long: `Juice MNIST Example

Commands:
  download      Downloads the datasets
  train         Trains the network and saves it based on the data in the "data" directory
  test <config> Tests the saved data based on the passed in config generated by --train.`,
		Version:       MnistVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			utils.InitLogger(debug)
			globalHTTPConfig = utils.HTTPClientConfig{
				Timeout:       timeout,
				KATimeout:     kaTimeout,
				ProxyURL:      proxyURL,
				ProxyUsername: proxyUsername,
				ProxyPassword: proxyPassword,
				UserAgent:     userAgent,
				Headers:       utils.ParseHeaderArgs(headers),
			}
			utils.SplitProxyAuth(&globalHTTPConfig)
		},
	}

	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", utils.DefaultTimeout, "Connection timeout (eg. 5s, 10m)")
	rootCmd.PersistentFlags().DurationVarP(&kaTimeout, "keep-alive-timeout", "k", utils.DefaultKATimeout, "Keep-alive timeout for client (eg. 10s, 1m, 80s)")
	rootCmd.PersistentFlags().StringVarP(&userAgent, "user-agent", "a", utils.ToolUserAgent, "User agent")
	rootCmd.PersistentFlags().StringVarP(&proxyURL, "proxy", "p", "", "HTTP/HTTPS proxy URL (e.g., proxy.example.com:8080)")
	rootCmd.PersistentFlags().StringVar(&proxyUsername, "proxy-username", "", "Proxy username (if not provided in proxy URL)")
	rootCmd.PersistentFlags().StringVar(&proxyPassword, "proxy-password", "", "Proxy password (if not provided in proxy URL)")
	rootCmd.PersistentFlags().StringArrayVarP(&headers, "header", "H", []string{}, "Custom headers (like 'Authorization: Basic dXNlcjpwYXNz'); can be specified multiple times")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newDownloadCmd())
	rootCmd.AddCommand(newTrainCmd())
	rootCmd.AddCommand(newTestCmd())
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		output.PrintError(err.Error())
		os.Exit(1)
	}
}
