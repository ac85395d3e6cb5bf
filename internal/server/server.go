package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wellbeamhq/pulse/internal/checkin"
	checkindomain "github.com/wellbeamhq/pulse/internal/checkin/domain"
	"github.com/wellbeamhq/pulse/internal/config"
	"github.com/wellbeamhq/pulse/internal/hrsummary"
	hrsummarydomain "github.com/wellbeamhq/pulse/internal/hrsummary/domain"
	"github.com/wellbeamhq/pulse/internal/observability"
	obsmiddleware "github.com/wellbeamhq/pulse/internal/observability/logger"
	obsmetrics "github.com/wellbeamhq/pulse/internal/observability/metrics"
	"github.com/wellbeamhq/pulse/internal/ratelimit"
	"github.com/wellbeamhq/pulse/internal/sentiment"
	"github.com/wellbeamhq/pulse/internal/twin"
	twindomain "github.com/wellbeamhq/pulse/internal/twin/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	sentiment.Module,
	checkin.Module,
	twin.Module,
	hrsummary.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine         *gin.Engine
	cfg            config.Config
	checkinSvc     checkindomain.Service
	twinSvc        twindomain.Service
	hrSummarySvc   hrsummarydomain.Service
	classifier     sentiment.Classifier
	checkinLimiter *ratelimit.CheckinLimiter
}

type ServerParams struct {
	fx.In

	Gin            *gin.Engine
	Cfg            config.Config
	CheckinSvc     checkindomain.Service
	TwinSvc        twindomain.Service
	HRSummarySvc   hrsummarydomain.Service
	Classifier     sentiment.Classifier
	CheckinLimiter *ratelimit.CheckinLimiter `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		checkinSvc:     p.CheckinSvc,
		twinSvc:        p.TwinSvc,
		hrSummarySvc:   p.HRSummarySvc,
		classifier:     p.Classifier,
		checkinLimiter: p.CheckinLimiter,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.POST("/sentiment/classify", s.ClassifySentiment)
	api.POST("/checkins", s.SubmitCheckIn)
	api.GET("/employees/:id/twin", s.GetDigitalTwinState)
	api.GET("/hr/summary", s.GetOrgSummary)
}
