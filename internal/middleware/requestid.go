// Package middleware holds the gin middleware shared by every console route.
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/maxviazov/gym-console/internal/requestid"
)

// RequestIDKey is the gin context key the request ID is stored under.
const RequestIDKey = "request_id"

// RequestID makes sure every request has an X-Request-ID. An incoming header
// is kept, otherwise a UUID is generated. The ID is echoed on the response and
// put on the request context so backend calls forward it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if id == "" {
			id = requestid.New()
		}
		c.Set(RequestIDKey, id)
		c.Header(requestid.Header, id)
		c.Request = c.Request.WithContext(requestid.WithContext(c.Request.Context(), id))
		c.Next()
	}
}
