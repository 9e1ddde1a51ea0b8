package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/pritam-ray/mitthuug-sub001/internal/analytics"
	"github.com/pritam-ray/mitthuug-sub001/internal/aws"
)

// Processor drains the analytics queue into the append-only events
// table and counts ingested events in CloudWatch.
type Processor struct {
	store   *analytics.Store
	metrics *analytics.Metrics
	logger  zerolog.Logger
}

// NewProcessor creates a worker processor with AWS clients injected.
func NewProcessor(clients *aws.Clients, eventsTable string, logger zerolog.Logger) *Processor {
	return &Processor{
		store:   analytics.NewStore(clients.DynamoDB, eventsTable),
		metrics: analytics.NewMetrics(clients.CloudWatch),
		logger:  logger,
	}
}

// Handle receives an SQS batch event and appends each record. A
// failure returns the error so the platform retries the batch; after
// too many attempts the message lands in the DLQ.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	ingested := 0
	for _, rec := range ev.Records {
		if err := p.processRecord(ctx, rec); err != nil {
			p.logger.Error().Err(err).Str("message_id", rec.MessageId).Msg("analytics ingestion failed")
			return err
		}
		ingested++
	}

	if ingested > 0 {
		// metric failure should not fail the batch
		if err := p.metrics.CountIngested(ctx, ingested); err != nil {
			p.logger.Warn().Err(err).Msg("failed to push ingestion metric")
		}
	}
	return nil
}

func (p *Processor) processRecord(ctx context.Context, rec events.SQSMessage) error {
	var ev analytics.Event
	if err := json.Unmarshal([]byte(rec.Body), &ev); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}
	if ev.EventType == "" {
		return fmt.Errorf("message %s has no event_type", rec.MessageId)
	}

	stored, err := p.store.Append(ctx, ev)
	if errors.Is(err, analytics.ErrDuplicateEvent) {
		// redelivered message, the event is already on record
		p.logger.Info().Str("event_id", ev.ID).Msg("duplicate delivery ignored")
		return nil
	}
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}

	p.logger.Info().Str("event_id", stored.ID).Str("event_type", stored.EventType).Msg("event ingested")
	return nil
}
