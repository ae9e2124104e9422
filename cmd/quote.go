package cmd

import (
	"fmt"
	"time"

	"github.com/outcomelabs/clobcore/internal/pricing"
	"github.com/outcomelabs/clobcore/internal/quotes"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute executable prices and odds for a YES/NO token pair",
	Long: `Fetches the top of book for both outcome tokens of a binary market and
prints the executable price and decimal odds for each direction. A missing NO
book is synthesized from the YES side.`,
	RunE: runQuote,
}

//nolint:gochecknoglobals // Cobra boilerplate
var (
	quoteYesToken string
	quoteNoToken  string
)

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringVarP(&quoteYesToken, "yes", "y", "", "YES outcome token ID (required)")
	quoteCmd.Flags().StringVarP(&quoteNoToken, "no", "n", "", "NO outcome token ID")
	_ = quoteCmd.MarkFlagRequired("yes")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := commandContext(15 * time.Second)
	defer cancel()

	client := quotes.NewClient(cfg.MarketDataBaseURL, logger)

	mp, err := client.FetchMarketPrices(ctx, quoteYesToken, quoteNoToken)
	if err != nil {
		return fmt.Errorf("fetch market prices: %w", err)
	}

	prices := pricing.ComputeExecutablePrices(mp)

	fmt.Printf("=== Executable Prices ===\n\n")
	fmt.Printf("YES token: %s\n", quoteYesToken)
	if quoteNoToken != "" {
		fmt.Printf("NO token:  %s\n", quoteNoToken)
	}
	fmt.Printf("\n")

	printDirection("FOR (buy YES)", prices.PriceFor, prices.OddsFor)
	printDirection("AGAINST (buy NO)", prices.PriceAgainst, prices.OddsAgainst)

	return nil
}

func printDirection(label string, price float64, odds *float64) {
	if price == 0 {
		fmt.Printf("%-18s not executable\n", label)
		return
	}

	fmt.Printf("%-18s price %.4f  odds %.4f\n", label, price, *odds)
}
