package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pritam-ray/mitthuug-sub001/internal/analytics"
	"github.com/pritam-ray/mitthuug-sub001/internal/schema"
	"github.com/pritam-ray/mitthuug-sub001/internal/validation"
)

// EventPublisher is what the analytics route needs from the queue.
type EventPublisher interface {
	Publish(ctx context.Context, ev analytics.Event, attributes map[string]string) error
}

// RegisterAnalyticsRoutes registers the telemetry intake endpoint. The
// event is queued for the worker, not written directly; intake stays
// fast and the table stays append-only behind one writer.
func RegisterAnalyticsRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()

	r.POST("/analytics/events", func(c *gin.Context) {
		ctx := c.Request.Context()

		var ins schema.AnalyticsEventInsert
		if err := validation.BindAndValidate(c, &ins, v); err != nil {
			return
		}

		if cfg.Analytics == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analytics_disabled"})
			return
		}

		ev := analytics.Event{
			ID:        uuid.NewString(),
			EventType: ins.EventType,
			EventData: ins.EventData,
			CreatedAt: time.Now().UTC(),
		}
		if err := cfg.Analytics.Publish(ctx, ev, map[string]string{"event_type": ev.EventType}); err != nil {
			cfg.Logger.Error().Err(err).Str("event_type", ev.EventType).Msg("failed to enqueue analytics event")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "enqueue_failed"})
			return
		}

		c.JSON(http.StatusAccepted, gin.H{"event_id": ev.ID})
	})
}
