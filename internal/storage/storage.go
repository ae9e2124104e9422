package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/outcomelabs/clobcore/pkg/types"
)

// Journal records relay acknowledgements for submitted orders. It is opt-in
// and lives entirely outside the execution core: the pipeline never reads it
// back, and skipping it changes nothing about order flow.
type Journal interface {
	// RecordSubmission stores one submitted-order acknowledgement.
	RecordSubmission(ctx context.Context, rec *Record) error

	// Close closes the journal.
	Close() error
}

// Record is one submitted-order acknowledgement.
type Record struct {
	ID          string
	Address     string
	TokenID     string
	Side        string
	Price       float64
	Size        float64
	OrderType   string
	OrderID     string
	Status      string
	SubmittedAt time.Time
}

// NewRecord builds a Record from a submitted order and its acknowledgement.
func NewRecord(address string, order *types.SignedOrder, orderType types.OrderType, price, size float64, ack *types.RelayAck) *Record {
	return &Record{
		ID:          uuid.New().String(),
		Address:     address,
		TokenID:     order.Value.TokenID,
		Side:        types.Side(order.Value.Side).String(),
		Price:       price,
		Size:        size,
		OrderType:   string(orderType),
		OrderID:     ack.OrderID,
		Status:      ack.Status,
		SubmittedAt: time.Now(),
	}
}
