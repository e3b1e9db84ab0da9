package interfaces

import (
	"andar_membership/internal/domain/entities"
	"context"
	"errors"
)

var ErrEventAlreadyProcessed = errors.New("event already processed")

// IProcessedEventRepository is the idempotency ledger of webhook deliveries.
//
// Claim must be atomic: of two concurrent claims for the same event id, exactly
// one succeeds and the other gets ErrEventAlreadyProcessed.
type IProcessedEventRepository interface {
	Claim(ctx context.Context, e entities.ProcessedEvent) error
}
