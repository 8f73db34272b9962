package http

import (
	"github.com/gin-gonic/gin"

	"restaurant-ordering-assistant/internal/middleware"
)

// RegisterRoutes maps the chat endpoint. Requests are throttled per session.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	r.POST("/chat", mw.RateLimit(), h.Chat)
}
