package app

import (
	"context"
	"net/http"

	"staff-service/internal/auth/handler"
	"staff-service/internal/auth/provider/gotrue"
	"staff-service/internal/auth/staff"
	"staff-service/internal/config"
	"staff-service/internal/metrics"
	"staff-service/internal/middleware"
	"staff-service/internal/supabase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	router, err := newRouter(cfg, infra)
	if err != nil {
		_ = infra.Close()
		return nil, nil, err
	}

	return router, infra.Close, nil
}

// newRouter wires the dependencies and routes.
func newRouter(cfg config.Config, infra *Infra) (*gin.Engine, error) {

	// ----------------------------
	// Dependencies
	// ----------------------------

	reg := prometheus.NewRegistry()
	if err := metrics.Register(reg); err != nil {
		return nil, err
	}

	project := supabase.New(cfg.SupabaseURL, cfg.ServiceRoleKey)
	orphans := infra.orphanLedger()

	staffService := staff.NewService(
		gotrue.New(project),
		infra.profileStore(project),
		orphans,
	)

	staffHandler := handler.NewHandler(
		staffService,
		orphans,
		middleware.NewAPIKeyGuard(cfg.APIKey),
	)

	// ----------------------------
	// Router
	// ----------------------------

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog())

	staffHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return router, nil
}
