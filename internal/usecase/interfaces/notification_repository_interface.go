package interfaces

import (
	"andar_membership/internal/domain/entities"
	"context"
)

// INotificationRepository persists the confirmation email log.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByRecipient(ctx context.Context, recipient string) ([]entities.Notification, error)
}
