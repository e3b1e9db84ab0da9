package repository

import (
	"context"
	"sync"
	"time"

	"andar_membership/internal/domain/entities"
	"andar_membership/internal/usecase/interfaces"
)

// ProcessedEventMemoryRepository is a single-instance ledger for local runs and tests.
type ProcessedEventMemoryRepository struct {
	mu     sync.Mutex
	events map[string]time.Time
	now    func() time.Time
}

var _ interfaces.IProcessedEventRepository = (*ProcessedEventMemoryRepository)(nil)

func NewProcessedEventMemoryRepository() *ProcessedEventMemoryRepository {
	return &ProcessedEventMemoryRepository{
		events: make(map[string]time.Time),
		now:    time.Now,
	}
}

func (r *ProcessedEventMemoryRepository) Claim(_ context.Context, e entities.ProcessedEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if exp, ok := r.events[e.EventID]; ok && now.Before(exp) {
		return interfaces.ErrEventAlreadyProcessed
	}
	r.events[e.EventID] = e.ExpiresAt

	// opportunistic sweep
	for id, exp := range r.events {
		if !now.Before(exp) {
			delete(r.events, id)
		}
	}
	return nil
}
