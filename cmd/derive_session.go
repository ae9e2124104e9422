package cmd

import (
	"fmt"
	"time"

	"github.com/outcomelabs/clobcore/internal/session"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var deriveSessionCmd = &cobra.Command{
	Use:   "derive-session",
	Short: "Derive L2 API credentials using the wallet private key",
	Long: `Signs an attestation challenge with the configured wallet key and exchanges
it at the relay for L2 API credentials (key + passphrase).

The credentials are printed so they can be saved alongside the wallet:
  CLOB_API_KEY=...
  CLOB_PASSPHRASE=...`,
	RunE: runDeriveSession,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(deriveSessionCmd)
}

func runDeriveSession(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	wallet, err := walletFromConfig(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("=== Deriving Session Credentials ===\n\n")
	fmt.Printf("Wallet: %s\n", wallet.Address().Hex())
	fmt.Printf("Relay: %s\n\n", cfg.RelayBaseURL)

	ctx, cancel := commandContext(30 * time.Second)
	defer cancel()

	deriver := session.New(cfg.RelayBaseURL, logger)

	sess, err := deriver.Derive(ctx, wallet)
	if err != nil {
		return fmt.Errorf("derive session: %w", err)
	}

	fmt.Printf("Credentials derived successfully:\n\n")
	fmt.Printf("  CLOB_API_KEY=%s\n", sess.L2.Key)
	fmt.Printf("  CLOB_PASSPHRASE=%s\n", sess.L2.Passphrase)

	return nil
}
