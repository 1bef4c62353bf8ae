package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"trip-planner/internal/model"
	tripHTTP "trip-planner/internal/trip/delivery/http"
)

const (
	apiPrefix       = "/api/v1"
	telegramWebhook = "/webhook/telegram"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.Logging())
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		// Trust no proxy headers unless the deployment configures them.
		if err := srv.gin.SetTrustedProxies(nil); err != nil {
			srv.l.Warnf(ctx, "SetTrustedProxies: %v", err)
		}
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

	tripHTTP.RegisterRoutes(srv.gin.Group(apiPrefix), srv.tripHandler, srv.mw)
	srv.l.Infof(ctx, "Trip routes registered under %s", apiPrefix)

	if srv.telegramHandler != nil {
		srv.gin.POST(telegramWebhook, srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST %s", telegramWebhook)
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
