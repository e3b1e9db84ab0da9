package repository

import (
	"context"
	"sync"

	"andar_membership/internal/domain/entities"
	"andar_membership/internal/usecase/interfaces"
)

// NotificationMemoryRepository keeps the email log in process memory.
type NotificationMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.Notification
}

var _ interfaces.INotificationRepository = (*NotificationMemoryRepository)(nil)

func NewNotificationMemoryRepository() *NotificationMemoryRepository {
	return &NotificationMemoryRepository{}
}

func (r *NotificationMemoryRepository) Create(_ context.Context, n entities.Notification) (entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
	return n, nil
}

func (r *NotificationMemoryRepository) ListByRecipient(_ context.Context, recipient string) ([]entities.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Notification, 0)
	for _, n := range r.items {
		if n.Recipient == recipient {
			out = append(out, n)
		}
	}
	sortNewestFirst(out)
	return out, nil
}
