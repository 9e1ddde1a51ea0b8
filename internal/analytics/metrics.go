package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	internalaws "github.com/pritam-ray/mitthuug-sub001/internal/aws"
)

// MetricNamespace groups the storefront's analytics metrics.
const MetricNamespace = "Mitthuug/Analytics"

// Metrics pushes ingestion counters to CloudWatch.
type Metrics struct {
	client  internalaws.CloudWatchAPI
	nowFunc func() time.Time
}

// NewMetrics returns a Metrics emitter.
func NewMetrics(client internalaws.CloudWatchAPI) *Metrics {
	return &Metrics{
		client:  client,
		nowFunc: time.Now,
	}
}

// CountIngested records n events ingested by the worker.
func (m *Metrics) CountIngested(ctx context.Context, n int) error {
	now := m.nowFunc()
	input := &cloudwatch.PutMetricDataInput{
		Namespace: awsString(MetricNamespace),
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: awsString("EventsIngested"),
				Timestamp:  &now,
				Unit:       cwtypes.StandardUnitCount,
				Value:      awsFloat64(float64(n)),
			},
		},
	}
	if _, err := m.client.PutMetricData(ctx, input); err != nil {
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}

func awsFloat64(f float64) *float64 { return &f }
