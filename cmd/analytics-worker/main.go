package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"

	"github.com/pritam-ray/mitthuug-sub001/internal/aws"
	"github.com/pritam-ray/mitthuug-sub001/internal/config"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "analytics-worker").Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()
	clients, err := aws.NewClients(ctx, cfg.AWSRegion)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init aws clients")
	}

	p := NewProcessor(clients, cfg.AnalyticsTable, logger)

	// RUN_LOCAL=true replays a single synthetic SQS event for development.
	if cfg.RunLocal {
		body := os.Getenv("LOCAL_SQS_BODY")
		if body == "" {
			body = `{"id":"local-ev-1","event_type":"page_view","event_data":{"path":"/"}}`
		}
		ev := events.SQSEvent{
			Records: []events.SQSMessage{{MessageId: "local-1", Body: body}},
		}
		if err := p.Handle(ctx, ev); err != nil {
			logger.Fatal().Err(err).Msg("local handler error")
		}
		return
	}

	lambda.Start(p.Handle)
}
