package test

import (
	"github.com/gin-gonic/gin"

	"restaurant-ordering-assistant/internal/cart"
	"restaurant-ordering-assistant/internal/router"
	"restaurant-ordering-assistant/internal/session/repository"
	pkgLog "restaurant-ordering-assistant/pkg/log"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleClassify(c *gin.Context)
	HandleHistory(c *gin.Context)
	HandleCart(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(
	l pkgLog.Logger,
	router router.Router,
	sessions repository.MessageRepository,
	carts cart.UseCase,
) Handler {
	return &handler{
		l:        l,
		router:   router,
		sessions: sessions,
		carts:    carts,
	}
}

// RegisterRoutes mounts the debug endpoints under rg. Only wired outside production.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/health", h.HandleHealthCheck)
	rg.POST("/classify", h.HandleClassify)
	rg.GET("/sessions/:id/history", h.HandleHistory)
	rg.GET("/sessions/:id/cart", h.HandleCart)
}
