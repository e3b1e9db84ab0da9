package interfaces

import (
	"andar_membership/internal/domain/entities"
	"context"
	"errors"
)

// ErrPermanentDelivery marks provider rejections that retrying cannot fix
// (bad request, auth failure, unknown template).
var ErrPermanentDelivery = errors.New("permanent email delivery failure")

// IEmailSender performs a single delivery attempt against the email provider.
type IEmailSender interface {
	Send(ctx context.Context, email entities.TransactionalEmail) (messageID string, err error)
}
