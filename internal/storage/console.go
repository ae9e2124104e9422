package storage

import (
	"context"

	"go.uber.org/zap"
)

// ConsoleJournal implements Journal by logging each submission.
type ConsoleJournal struct {
	logger *zap.Logger
}

// NewConsoleJournal creates a console journal.
func NewConsoleJournal(logger *zap.Logger) *ConsoleJournal {
	logger.Info("console-journal-initialized")
	return &ConsoleJournal{logger: logger}
}

// RecordSubmission logs the acknowledgement.
func (c *ConsoleJournal) RecordSubmission(ctx context.Context, rec *Record) error {
	c.logger.Info("order-recorded",
		zap.String("record-id", rec.ID),
		zap.String("address", rec.Address),
		zap.String("token-id", rec.TokenID),
		zap.String("side", rec.Side),
		zap.Float64("price", rec.Price),
		zap.Float64("size", rec.Size),
		zap.String("order-type", rec.OrderType),
		zap.String("order-id", rec.OrderID),
		zap.String("status", rec.Status))

	return nil
}

// Close is a no-op for the console journal.
func (c *ConsoleJournal) Close() error {
	c.logger.Info("closing-console-journal")
	return nil
}
