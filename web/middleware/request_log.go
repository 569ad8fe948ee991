package middleware

import (
	"time"

	"github.com/druglens/druglens/logger"
	"github.com/druglens/druglens/web/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogMiddleware tags each request with an id and logs it once it completes.
func RequestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)

		start := time.Now()
		c.Next()

		userId, _ := session.GetLoginUserId(c)
		logger.Debugf("[%s] %s %s -> %d user=%d ip=%s %s",
			id, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), userId, c.ClientIP(), time.Since(start))
	}
}
