package repository

import (
	"context"
	"sort"

	"andar_membership/internal/domain/entities"
	"andar_membership/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	notificationsRecipientIndex   = "recipient-index"
)

type notificationItem struct {
	ID                string `dynamodbav:"id"`
	EventID           string `dynamodbav:"event_id,omitempty"`
	SessionID         string `dynamodbav:"session_id,omitempty"`
	Recipient         string `dynamodbav:"recipient"`
	Name              string `dynamodbav:"name"`
	Tier              string `dynamodbav:"tier"`
	Status            string `dynamodbav:"status"`
	Attempts          int    `dynamodbav:"attempts"`
	ProviderMessageID string `dynamodbav:"provider_message_id,omitempty"`
	Error             string `dynamodbav:"error,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists the confirmation email log in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: recipient-index (PK: recipient)
type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client, tableName string) *NotificationDynamoRepository {
	if tableName == "" {
		tableName = defaultNotificationsTableName
	}
	return &NotificationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

// ListByRecipient returns the newest entries first.
func (r *NotificationDynamoRepository) ListByRecipient(ctx context.Context, recipient string) ([]entities.Notification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsRecipientIndex),
		KeyConditionExpression: aws.String("recipient = :r"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":r": &types.AttributeValueMemberS{Value: recipient},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Notification, 0, len(out.Items))
	for _, raw := range out.Items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromNotificationItem(it))
	}
	sortNewestFirst(items)
	return items, nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:                n.ID,
		EventID:           n.EventID,
		SessionID:         n.SessionID,
		Recipient:         n.Recipient,
		Name:              n.Name,
		Tier:              string(n.Tier),
		Status:            string(n.Status),
		Attempts:          n.Attempts,
		ProviderMessageID: n.ProviderMessageID,
		Error:             n.Error,
		CreatedAt:         formatTime(n.CreatedAt),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:                it.ID,
		EventID:           it.EventID,
		SessionID:         it.SessionID,
		Recipient:         it.Recipient,
		Name:              it.Name,
		Tier:              entities.MembershipTier(it.Tier),
		Status:            entities.NotificationStatus(it.Status),
		Attempts:          it.Attempts,
		ProviderMessageID: it.ProviderMessageID,
		Error:             it.Error,
		CreatedAt:         parseTime(it.CreatedAt),
	}
}

func sortNewestFirst(items []entities.Notification) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
