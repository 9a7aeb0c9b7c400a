package api

import (
	"net/http"

	"DevOpsFacts/backend/go/internal/facts_service/service"
	"DevOpsFacts/backend/go/internal/models"

	"github.com/gin-gonic/gin"
)

// welcomePage 是 GET / 返回的固定 HTML。
const welcomePage = `<h1>🚀 Welcome to the DevOps Facts API</h1>
<p>Try <code>/api/fact</code> to get a random DevOps fact!</p>
<p><strong>New commit deployed successfully!</strong></p>`

// Handler 封装了所有 API endpoint 的处理函数。
type Handler struct {
	service *service.Service
}

// NewHandler 创建一个新的 Handler 实例。
func NewHandler(s *service.Service) *Handler {
	return &Handler{service: s}
}

// Welcome 返回欢迎页。
func (h *Handler) Welcome(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(welcomePage))
}

// RandomFact 返回 {"fact": "..."}。
func (h *Handler) RandomFact(c *gin.Context) {
	c.JSON(http.StatusOK, models.FactResponse{Fact: h.service.RandomFact()})
}
