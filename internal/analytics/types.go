package analytics

import (
	"encoding/json"
	"time"
)

// Event is the append-only telemetry record persisted in the
// analytics DynamoDB table and carried over SQS.
type Event struct {
	ID        string          `json:"id" dynamodbav:"id"` // PK
	EventType string          `json:"event_type" dynamodbav:"event_type"`
	EventData json.RawMessage `json:"event_data,omitempty" dynamodbav:"event_data,omitempty"`
	CreatedAt time.Time       `json:"created_at" dynamodbav:"created_at"`
}
