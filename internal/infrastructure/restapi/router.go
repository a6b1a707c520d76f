package restapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ton_portfolio/internal/infrastructure/configloader"
	"ton_portfolio/internal/pkg/metrics"
)

// SetupRouter configures the gin engine with the page, API, events and metrics routes.
// events may be nil, in which case no SSE route is registered.
func SetupRouter(handler *SessionHandler, events *EventPublisher, cfg *configloader.Config, zapLogger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(pageTemplate)

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Server.CORSAllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	router.Use(ZapLoggerMiddleware(zapLogger))
	router.Use(metrics.GinMiddleware())
	router.Use(gin.Recovery())

	router.GET("/", handler.PageHandler)
	router.GET("/healthz", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/view", handler.GetViewHandler)
		v1.POST("/wallet/action", handler.WalletActionHandler)
		v1.POST("/wallet/copy", handler.CopyAddressHandler)
		v1.POST("/tokens/:index/select", handler.SelectTokenHandler)
		v1.GET("/chart", handler.ChartHandler)
		if events != nil {
			v1.GET("/events", events.Handler)
		}
	}

	return router
}

// ZapLoggerMiddleware logs every request through zap.
func ZapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("clientIP", c.ClientIP()),
		)
	}
}
