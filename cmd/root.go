package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "clobcore",
	Short: "Binary market order execution core",
	Long: `clobcore derives trading sessions, routes executable prices for binary
markets, and builds and submits EIP-712 signed limit orders through a relay.

Commands:
  derive-session  derive L2 API credentials from a wallet key
  quote           compute executable prices and odds for a YES/NO token pair
  place-order     build, sign and submit a limit order
  run             serve quotes over HTTP with live market data`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
