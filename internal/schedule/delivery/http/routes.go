package http

import (
	"github.com/gin-gonic/gin"

	"home-pa-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/generate", mw.RateLimit(), h.Generate)
	rg.POST("/session", mw.RateLimit(), h.MarkSession)
}
