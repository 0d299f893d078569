package router

import (
	"time"

	"faden/internal/app/board"
	"faden/internal/app/health"
	"faden/internal/app/post"
	"faden/internal/gateways/websocket"
	"faden/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "faden/docs"
)

type Router struct {
	Engine *gin.Engine
}

type Options struct {
	FrontendURL  string
	StoreTimeout time.Duration
	Metrics      middleware.HTTPRecorder
}

func NewRouter(logger *zap.Logger, opts Options) *Router {
	engine := gin.New()
	engine.Use(middleware.CORSMiddleware(opts.FrontendURL))
	engine.Use(middleware.LoggerMiddleware(logger))
	if opts.Metrics != nil {
		engine.Use(middleware.MetricsMiddleware(opts.Metrics))
	}
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestTimeout(opts.StoreTimeout))
	return &Router{Engine: engine}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterBoardRoutes(handler board.Handler) {
	board.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterPostRoutes(handler post.Handler) {
	post.RegisterRoutes(r.Engine.Group("/api"), handler)
}

func (r *Router) RegisterWebSocketRoutes(hub *websocket.Hub) {
	websocket.RegisterRoutes(r.Engine, hub)
}

func (r *Router) RegisterMetricsRoutes(gatherer prometheus.Gatherer) {
	r.Engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

func (r *Router) RegisterSwaggerRoutes() {
	r.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
