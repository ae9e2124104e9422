package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/outcomelabs/clobcore/internal/orders"
	"github.com/outcomelabs/clobcore/internal/session"
	"github.com/outcomelabs/clobcore/internal/storage"
	"github.com/outcomelabs/clobcore/pkg/config"
	"github.com/outcomelabs/clobcore/pkg/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var placeOrderCmd = &cobra.Command{
	Use:   "place-order",
	Short: "Build, sign and submit a limit order",
	Long: `Derives (or reuses) session credentials, builds an EIP-712 signed limit
order for the given outcome token, and posts it through the relay.

The relay's acknowledgement is recorded in the configured journal
(JOURNAL_MODE=console|postgres).`,
	RunE: runPlaceOrder,
}

//nolint:gochecknoglobals // Cobra boilerplate
var (
	orderTokenID   string
	orderSide      string
	orderPrice     float64
	orderSize      float64
	orderExpiresIn time.Duration
	orderTypeFlag  string
)

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(placeOrderCmd)

	placeOrderCmd.Flags().StringVarP(&orderTokenID, "token-id", "t", "", "Outcome token ID (required)")
	placeOrderCmd.Flags().StringVar(&orderSide, "side", "buy", "Order side: buy or sell")
	placeOrderCmd.Flags().Float64VarP(&orderPrice, "price", "p", 0, "Limit price in (0, 1) (required)")
	placeOrderCmd.Flags().Float64VarP(&orderSize, "size", "s", 0, "Order size in settlement units (required)")
	placeOrderCmd.Flags().DurationVar(&orderExpiresIn, "expires-in", 0, "Time until expiration (default from ORDER_DEFAULT_EXPIRY)")
	placeOrderCmd.Flags().StringVar(&orderTypeFlag, "order-type", "", "Order type: GTC, FOK or GTD (default from ORDER_TYPE)")
	_ = placeOrderCmd.MarkFlagRequired("token-id")
	_ = placeOrderCmd.MarkFlagRequired("price")
	_ = placeOrderCmd.MarkFlagRequired("size")
}

func runPlaceOrder(cmd *cobra.Command, args []string) error {
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

	side, err := parseSide(orderSide)
	if err != nil {
		return err
	}

	orderType, err := resolveOrderType(cfg)
	if err != nil {
		return err
	}

	expiresIn := orderExpiresIn
	if expiresIn <= 0 {
		expiresIn = cfg.DefaultExpiry
	}

	fmt.Printf("=== Placing Order ===\n\n")
	fmt.Printf("Wallet: %s\n", wallet.Address().Hex())
	fmt.Printf("Token: %s\n", orderTokenID)
	fmt.Printf("Side: %s  Price: %.4f  Size: %.2f\n", side, orderPrice, orderSize)
	fmt.Printf("Type: %s  Expires in: %s\n\n", orderType, expiresIn)

	ctx, cancel := commandContext(60 * time.Second)
	defer cancel()

	sessions, err := newSessionCache(cfg, logger)
	if err != nil {
		return fmt.Errorf("create session cache: %w", err)
	}
	defer sessions.Close()

	deriver := session.New(cfg.RelayBaseURL, logger)

	sess, err := sessionFor(ctx, sessions, deriver, wallet)
	if err != nil {
		return err
	}

	signed, err := orders.BuildSignedOrder(orders.BuildParams{
		TokenID:    orderTokenID,
		Price:      orderPrice,
		Size:       orderSize,
		Side:       side,
		Expiration: time.Now().Add(expiresIn).Unix(),
		ChainID:    cfg.ChainID,
	}, wallet)
	if err != nil {
		return fmt.Errorf("build order: %w", err)
	}

	submitter := orders.NewSubmitter(cfg.RelayBaseURL, logger)

	ack, err := submitter.PostSignedOrder(ctx, orders.SubmitParams{
		Session:   sess,
		OrderType: orderType,
		Order:     signed,
	})
	if err != nil {
		return fmt.Errorf("submit order: %w", err)
	}

	fmt.Printf("Relay response:\n")
	fmt.Printf("  Success: %v\n", ack.Success)
	if ack.OrderID != "" {
		fmt.Printf("  Order ID: %s\n", ack.OrderID)
	}
	if ack.Status != "" {
		fmt.Printf("  Status: %s\n", ack.Status)
	}
	if ack.ErrorMsg != "" {
		fmt.Printf("  Error: %s\n", ack.ErrorMsg)
	}

	return journalSubmission(cfg, logger, sess.Address, signed, orderType, ack)
}

func parseSide(raw string) (types.Side, error) {
	switch strings.ToLower(raw) {
	case "buy":
		return types.Buy, nil
	case "sell":
		return types.Sell, nil
	default:
		return 0, fmt.Errorf("side must be buy or sell, got %q", raw)
	}
}

func resolveOrderType(cfg *config.Config) (types.OrderType, error) {
	raw := orderTypeFlag
	if raw == "" {
		raw = cfg.OrderType
	}

	switch types.OrderType(strings.ToUpper(raw)) {
	case types.GTC:
		return types.GTC, nil
	case types.FOK:
		return types.FOK, nil
	case types.GTD:
		return types.GTD, nil
	default:
		return "", fmt.Errorf("order type must be GTC, FOK or GTD, got %q", raw)
	}
}

func journalSubmission(
	cfg *config.Config,
	logger *zap.Logger,
	address string,
	signed *types.SignedOrder,
	orderType types.OrderType,
	ack *types.RelayAck,
) error {
	journal, err := newJournal(cfg, logger)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	defer func() {
		_ = journal.Close()
	}()

	record := storage.NewRecord(address, signed, orderType, orderPrice, orderSize, ack)

	ctx, cancel := commandContext(10 * time.Second)
	defer cancel()

	err = journal.RecordSubmission(ctx, record)
	if err != nil {
		return fmt.Errorf("record submission: %w", err)
	}

	return nil
}

func newJournal(cfg *config.Config, logger *zap.Logger) (storage.Journal, error) {
	if cfg.JournalMode == "postgres" {
		return storage.NewPostgresJournal(&storage.PostgresConfig{
			Host:     cfg.PostgresHost,
			Port:     cfg.PostgresPort,
			User:     cfg.PostgresUser,
			Password: cfg.PostgresPass,
			Database: cfg.PostgresDB,
			SSLMode:  cfg.PostgresSSL,
			Logger:   logger,
		})
	}

	return storage.NewConsoleJournal(logger), nil
}
