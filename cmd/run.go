package cmd

import (
	"fmt"

	"github.com/outcomelabs/clobcore/internal/app"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the quote service",
	Long: `Starts the quote HTTP service, which will:
1. Serve GET /api/quote?yes=<tokenId>&no=<tokenId> with executable prices
2. Keep books fresh over WebSocket for tokens passed via --tokens
3. Expose /health, /ready and /metrics

Tokens not covered by the stream are quoted via REST on demand.`,
	RunE: runService,
}

//nolint:gochecknoglobals // Cobra boilerplate
var streamTokens []string

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringSliceVar(&streamTokens, "tokens", nil, "Token IDs to subscribe to on the market data stream")
}

func runService(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	application := app.New(cfg, logger, &app.Options{
		TokenIDs: streamTokens,
	})

	err = application.Run()
	if err != nil {
		return fmt.Errorf("run app: %w", err)
	}

	return nil
}
