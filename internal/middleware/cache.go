package middleware

import (
	"bytes"
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"edinburgh-events/internal/config"
)

// ResponseCache caches successful GET responses in Redis for the configured
// TTL, keyed by path and query. Events are ephemeral per-request view models,
// so the TTL is short; a nil client or disabled config turns the middleware
// into a pass-through.
func ResponseCache(client *redis.Client, cfg config.CacheConfig, logger *logrus.Logger) gin.HandlerFunc {
	if client == nil || !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if c.Request.Method != "GET" {
			c.Next()
			return
		}

		key := cfg.Prefix + ":" + c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			key += "?" + q
		}

		getCtx, cancel := context.WithTimeout(c.Request.Context(), 500*time.Millisecond)
		body, err := client.Get(getCtx, key).Bytes()
		cancel()
		if err == nil {
			c.Data(200, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		writer := &captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()

		if writer.Status() == 200 && writer.body.Len() > 0 {
			// The request context may already be done once the handler
			// returns, so the store gets its own deadline
			setCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()
			if err := client.Set(setCtx, key, writer.body.Bytes(), cfg.TTL).Err(); err != nil {
				logger.WithError(err).Debug("failed to store cached response")
			}
		}
	}
}

// captureWriter tees the response body so it can be stored after the handler
// runs
type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
