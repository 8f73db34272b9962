package httpserver

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "restaurant-ordering-assistant/internal/chat/delivery/http"
	"restaurant-ordering-assistant/internal/test"
)

const environmentProduction = "production"

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID())
	srv.gin.Use(srv.middleware.AccessLog())

	ctx := context.Background()
	if srv.isProduction() {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	chatHTTP.RegisterRoutes(srv.gin, srv.chatHandler, srv.middleware)
	srv.l.Infof(ctx, "Chat route registered at POST /chat")

	if srv.testHandler == nil {
		return
	}
	if srv.isProduction() {
		srv.l.Infof(ctx, "Production environment, skipping test routes")
		return
	}
	test.RegisterRoutes(srv.gin.Group("/test"), srv.testHandler)
	srv.l.Infof(ctx, "Test routes registered under /test")
}

func (srv HTTPServer) isProduction() bool {
	return strings.EqualFold(srv.environment, environmentProduction)
}
