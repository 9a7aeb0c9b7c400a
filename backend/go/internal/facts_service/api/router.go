package api

import (
	"net/http"

	"DevOpsFacts/backend/go/pkg/logger"

	"github.com/gin-gonic/gin"
)

// readOnly 是每个路由接受的方法，HEAD 与 GET 返回相同的状态码和头部。
var readOnly = []string{http.MethodGet, http.MethodHead}

// SetupRouter 配置和返回一个 Gin 引擎实例。
// 未注册的路径和方法都由 Gin 返回默认的 404。
func SetupRouter(h *Handler, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(log), gin.Recovery())

	r.Match(readOnly, "/", h.Welcome)

	apiGroup := r.Group("/api")
	{
		apiGroup.Match(readOnly, "/fact", h.RandomFact)
	}

	return r
}
