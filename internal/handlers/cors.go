package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// allowedHeaders mirrors what the storefront UI sends with every call.
const allowedHeaders = "authorization, x-client-info, apikey, content-type"

// CORSMiddleware attaches permissive cross-origin headers to every
// response and short-circuits preflight probes with an empty 200
// before any business logic runs.
//
// gin-contrib/cors is not used here: it answers preflight with 204 and
// the storefront contract pins preflight to 200 with an empty body.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", allowedHeaders)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
