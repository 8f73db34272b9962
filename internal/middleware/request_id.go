package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"restaurant-ordering-assistant/pkg/log"
)

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

// RequestID stores the incoming X-Request-ID, or a fresh one, in the request context
// so every log line of the request carries it.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		ctx := log.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// AccessLog logs one line per request once it completes.
func (mw Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		mw.l.Infof(c.Request.Context(), "%s %s -> %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}
