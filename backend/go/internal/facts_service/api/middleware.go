package api

import (
	"net/http"
	"time"

	"DevOpsFacts/backend/go/internal/models"
	"DevOpsFacts/backend/go/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 是请求 ID 所在的 HTTP 头。
const RequestIDHeader = "X-Request-ID"

// RequestLogger 创建一个 Gin 中间件，为每个请求分配请求 ID 并记录访问日志。
// 已带有 X-Request-ID 的请求沿用原 ID。
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		info := models.RequestInfo{
			RequestID: requestID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			LatencyMS: float64(time.Since(start).Microseconds()) / 1000,
			ClientIP:  c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		entry := log.WithRequest(info)

		switch {
		case info.Status >= http.StatusInternalServerError:
			entry.Error("request failed")
		case info.Status >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}
