package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	headerRequestID = "X-Request-ID"
	keyRequestID    = "request_id"
	keyLogEntry     = "log_entry"
)

// RequestID echoes X-Request-ID (or a fresh uuid) and stores a request-scoped log entry.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(keyRequestID, id)
		c.Set(keyLogEntry, log.WithField(keyRequestID, id))
		c.Header(headerRequestID, id)

		c.Next()
	}
}

// Logger returns the entry stored by RequestID, or a bare standard-logger entry.
func Logger(c *gin.Context) *log.Entry {
	if v, ok := c.Get(keyLogEntry); ok {
		if entry, ok := v.(*log.Entry); ok {
			return entry
		}
	}
	return log.NewEntry(log.StandardLogger())
}
