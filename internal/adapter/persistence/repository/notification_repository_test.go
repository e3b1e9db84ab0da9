package repository

import (
	"context"
	"testing"
	"time"

	"andar_membership/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationMemoryRepository(t *testing.T) {
	repo := NewNotificationMemoryRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repo.Create(ctx, entities.Notification{ID: "n-1", Recipient: "a@x.com", CreatedAt: now.Add(-time.Hour)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Notification{ID: "n-2", Recipient: "a@x.com", CreatedAt: now})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Notification{ID: "n-3", Recipient: "b@y.com", CreatedAt: now})
	require.NoError(t, err)

	list, err := repo.ListByRecipient(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n-2", list[0].ID)

	list, err = repo.ListByRecipient(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNotificationDynamoRepository_Create(t *testing.T) {
	client, calls := newFakeDynamoDB(t, func(fakeDynamoCall) fakeDynamoResponse { return fakeDynamoResponse{} })
	repo := NewNotificationDynamoRepository(client, "notifications_test")

	n := entities.Notification{
		ID:                "n-1",
		EventID:           "evt_1",
		Recipient:         "a@x.com",
		Name:              "Alice",
		Tier:              entities.MembershipTierClassic,
		Status:            entities.NotificationStatusSent,
		Attempts:          2,
		ProviderMessageID: "<msg@brevo>",
		CreatedAt:         time.Date(2026, time.March, 4, 9, 30, 0, 0, time.UTC),
	}
	_, err := repo.Create(context.Background(), n)
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "PutItem", call.Operation)
	assert.Equal(t, "notifications_test", call.Body["TableName"])
	item := call.Body["Item"].(map[string]any)
	assert.Equal(t, map[string]any{"S": "a@x.com"}, item["recipient"])
	assert.Equal(t, map[string]any{"N": "2"}, item["attempts"])
	assert.Equal(t, map[string]any{"S": "2026-03-04T09:30:00Z"}, item["created_at"])
	assert.NotContains(t, item, "error")
}

func TestNotificationDynamoRepository_ListByRecipient(t *testing.T) {
	client, calls := newFakeDynamoDB(t, func(fakeDynamoCall) fakeDynamoResponse {
		return fakeDynamoResponse{Body: `{"Count":2,"Items":[
			{"id":{"S":"n-old"},"recipient":{"S":"a@x.com"},"name":{"S":"Alice"},"tier":{"S":"digital"},"status":{"S":"failed"},"attempts":{"N":"3"},"error":{"S":"brevo: status 500"},"created_at":{"S":"2026-03-01T10:00:00Z"}},
			{"id":{"S":"n-new"},"recipient":{"S":"a@x.com"},"name":{"S":"Alice"},"tier":{"S":"digital"},"status":{"S":"sent"},"attempts":{"N":"1"},"provider_message_id":{"S":"<m@brevo>"},"created_at":{"S":"2026-03-02T10:00:00Z"}}
		]}`}
	})
	repo := NewNotificationDynamoRepository(client, "")

	list, err := repo.ListByRecipient(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n-new", list[0].ID)
	assert.Equal(t, entities.NotificationStatusSent, list[0].Status)
	assert.Equal(t, "<m@brevo>", list[0].ProviderMessageID)
	assert.Equal(t, 3, list[1].Attempts)
	assert.Equal(t, entities.MembershipTierDigital, list[1].Tier)

	call := (*calls)[0]
	assert.Equal(t, "Query", call.Operation)
	assert.Equal(t, "notifications", call.Body["TableName"])
	assert.Equal(t, "recipient-index", call.Body["IndexName"])
}
