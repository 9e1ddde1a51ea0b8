package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pritam-ray/mitthuug-sub001/internal/analytics"
	"github.com/pritam-ray/mitthuug-sub001/internal/aws"
	"github.com/pritam-ray/mitthuug-sub001/internal/catalog"
	"github.com/pritam-ray/mitthuug-sub001/internal/config"
	"github.com/pritam-ray/mitthuug-sub001/internal/handlers"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.CORSMiddleware())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterPaymentRoutes(r, cfg)
	handlers.RegisterCatalogRoutes(r, cfg)
	handlers.RegisterAnalyticsRoutes(r, cfg)

	return r
}

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "storefront-api").Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	hcfg := handlers.HandlerConfig{
		Config:  cfg,
		Catalog: catalog.Fixtures(),
		Logger:  logger,
	}

	// analytics intake only runs when a queue is configured
	if cfg.AnalyticsQueueURL != "" {
		clients, err := aws.NewClients(context.Background(), cfg.AWSRegion)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to init aws clients")
		}
		hcfg.Analytics = analytics.NewPublisher(clients.SQS, cfg.AnalyticsQueueURL)
	}

	r := setupRouter(hcfg)

	// RUN_LOCAL=true runs a plain HTTP server for development.
	if cfg.RunLocal {
		logger.Info().Str("addr", cfg.ServerAddr).Msg("running local server")
		if err := r.Run(cfg.ServerAddr); err != nil {
			logger.Fatal().Err(err).Msg("failed to run local server")
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
