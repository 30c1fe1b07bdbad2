package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RequestLogger tags each request with a UUID and logs method, path,
// status, and latency on completion.
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := uuid.NewString()
		ctx.Set("request_id", requestID)
		start := time.Now()

		ctx.Next()

		log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     ctx.Request.Method,
			"path":       ctx.Request.URL.Path,
			"status":     ctx.Writer.Status(),
			"latency":    time.Since(start),
		}).Info("request handled")
	}
}

// CORS permits any origin, method, and header.  A development-mode
// default, not a security boundary.
func CORS() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"*"}
	return cors.New(cfg)
}
