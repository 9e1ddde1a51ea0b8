package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"github.com/pritam-ray/mitthuug-sub001/internal/aws"
)

// ErrDuplicateEvent indicates an append collided with an existing
// event id. With generated ids this only happens on redelivery.
var ErrDuplicateEvent = errors.New("analytics event already exists")

// Store appends events to the analytics DynamoDB table. Events are
// never updated or deleted.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
	idFunc    func() string
}

// NewStore returns a Store bound to a table.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
		idFunc:    uuid.NewString,
	}
}

// NewEvent builds an event with a generated id and the current time.
func (s *Store) NewEvent(eventType string, data json.RawMessage) Event {
	return Event{
		ID:        s.idFunc(),
		EventType: eventType,
		EventData: data,
		CreatedAt: s.nowFunc().UTC(),
	}
}

// Append writes one event. If the event carries no id a fresh one is
// generated; a zero CreatedAt is stamped here. The conditional write
// makes redelivery of an already-stored event a detectable no-op
// rather than a duplicate row.
func (s *Store) Append(ctx context.Context, ev Event) (Event, error) {
	if ev.ID == "" {
		ev.ID = s.idFunc()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = s.nowFunc().UTC()
	}

	item, err := attributevalue.MarshalMap(ev)
	if err != nil {
		return Event{}, fmt.Errorf("marshal event: %w", err)
	}

	input := &dyn.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: awsString("attribute_not_exists(id)"),
	}

	if _, err := s.client.PutItem(ctx, input); err != nil {
		var ae smithy.APIError
		if errors.As(err, &ae) && ae.ErrorCode() == "ConditionalCheckFailedException" {
			return Event{}, ErrDuplicateEvent
		}
		return Event{}, fmt.Errorf("put item: %w", err)
	}

	return ev, nil
}

// Get retrieves an event by id. If not found, returns (nil, nil).
func (s *Store) Get(ctx context.Context, id string) (*Event, error) {
	input := &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	}
	out, err := s.client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var ev Event
	if err := attributevalue.UnmarshalMap(out.Item, &ev); err != nil {
		return nil, fmt.Errorf("unmarshal item: %w", err)
	}
	return &ev, nil
}

func awsString(s string) *string { return &s }
