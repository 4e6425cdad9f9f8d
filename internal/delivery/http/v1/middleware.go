package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDCtxKey = "request_id"
)

// HandleRequestID reuses the caller's request id or issues a new one.
func (h *handlerImpl) HandleRequestID(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	c.Set(requestIDCtxKey, requestID)
	c.Header(requestIDHeader, requestID)
	c.Next()
}

func (h *handlerImpl) HandleAccessLog(c *gin.Context) {
	start := time.Now()
	c.Next()

	event := h.logger.Info()
	if c.Writer.Status() >= 500 {
		event = h.logger.Error()
	}
	event.
		Str("request_id", c.GetString(requestIDCtxKey)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", c.Writer.Status()).
		Dur("latency", time.Since(start)).
		Msg("handled request")
}
