package repository

import (
	"context"
	"strconv"
	"time"

	"andar_membership/internal/domain/entities"
	"andar_membership/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProcessedEventsTableName = "processed_events"

type processedEventItem struct {
	EventID     string `dynamodbav:"event_id"`
	EventType   string `dynamodbav:"event_type"`
	ProcessedAt string `dynamodbav:"processed_at"`
	ExpiresAt   int64  `dynamodbav:"expires_at"`
}

// ProcessedEventDynamoRepository claims webhook event ids with a conditional put.
//
// Table requirements:
//   - PK: event_id (string)
//   - TTL attribute: expires_at (epoch seconds)
type ProcessedEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProcessedEventRepository = (*ProcessedEventDynamoRepository)(nil)

func NewProcessedEventDynamoRepository(ddb *dynamodb.Client, tableName string) *ProcessedEventDynamoRepository {
	if tableName == "" {
		tableName = defaultProcessedEventsTableName
	}
	return &ProcessedEventDynamoRepository{ddb: ddb, tableName: tableName}
}

// Claim succeeds when the id is new, or when a previous claim has expired but
// DynamoDB's TTL sweeper has not removed it yet.
func (r *ProcessedEventDynamoRepository) Claim(ctx context.Context, e entities.ProcessedEvent) error {
	av, err := attributevalue.MarshalMap(processedEventItem{
		EventID:     e.EventID,
		EventType:   e.EventType,
		ProcessedAt: formatTime(e.ProcessedAt),
		ExpiresAt:   e.ExpiresAt.Unix(),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #exp < :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":  "event_id",
			"#exp": "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(nowUnix(e), 10)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return interfaces.ErrEventAlreadyProcessed
		}
		return err
	}
	return nil
}

func nowUnix(e entities.ProcessedEvent) int64 {
	if e.ProcessedAt.IsZero() {
		return time.Now().Unix()
	}
	return e.ProcessedAt.Unix()
}
