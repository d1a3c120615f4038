package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RequestLogger writes one line per request with the outcome attached.
func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		attrs := []logger.Attr{
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
			logger.String("request_id", c.GetString("request_id")),
		}
		if errMsg := c.GetString("error"); errMsg != "" {
			attrs = append(attrs, logger.String("error", errMsg))
		}

		level := logger.InfoLevel
		if c.Writer.Status() >= 500 {
			level = logger.ErrorLevel
		}

		log.LogAttrs(c.Request.Context(), level, "request handled", attrs...)
	}
}
