package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pritam-ray/mitthuug-sub001/internal/catalog"
	"github.com/pritam-ray/mitthuug-sub001/internal/config"
	"github.com/pritam-ray/mitthuug-sub001/internal/payments"
	"github.com/pritam-ray/mitthuug-sub001/internal/validation"
)

// OrderCreator is what the payment route needs from the gateway.
type OrderCreator interface {
	CreateOrder(ctx context.Context, p payments.CreateOrderParams) (payments.Order, error)
}

// HandlerConfig groups dependencies for the API handlers.
type HandlerConfig struct {
	Config    config.Config
	Gateway   OrderCreator   // defaults to the Razorpay gateway when nil
	Catalog   *catalog.Store // defaults to the development fixtures when nil
	Analytics EventPublisher // nil disables the analytics intake route
	Logger    zerolog.Logger
}

// RegisterPaymentRoutes registers the order-creation route.
//
// There is no idempotency mechanism: two identical concurrent requests
// create two distinct provider orders. The caller's receipt is the
// only correlation handle.
func RegisterPaymentRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()

	gateway := cfg.Gateway
	if gateway == nil {
		gateway = payments.NewRazorpayGateway(cfg.Config.RazorpayKeyID, cfg.Config.RazorpayKeySecret, cfg.Logger)
	}

	r.POST("/create-order", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.CreatePaymentOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}

		// fail closed on partial credentials; never reveal which one is missing
		if !cfg.Config.HasPaymentCredentials() {
			cfg.Logger.Error().Msg("payment provider credentials missing")
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "payment provider is not configured",
			})
			return
		}

		order, err := gateway.CreateOrder(ctx, payments.CreateOrderParams{
			Amount:   req.Amount,
			Currency: req.Currency,
			Receipt:  req.Receipt,
			Notes:    req.Notes,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"orderId":  order.ID,
			"amount":   order.Amount,
			"currency": order.Currency,
			"receipt":  order.Receipt,
		})
	})
}
