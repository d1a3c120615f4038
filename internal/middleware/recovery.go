package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a handler panic into a 500 response so one bad request
// cannot take the process down.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
					logger.Any("panic", r),
					logger.String("path", c.Request.URL.Path),
					logger.String("stack", string(debug.Stack())),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					ginext.H{"error": "internal server error"},
				)
			}
		}()

		c.Next()
	}
}
