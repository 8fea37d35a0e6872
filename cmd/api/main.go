package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/radoraza-hash/hair-style-it/internal/cache"
	"github.com/radoraza-hash/hair-style-it/internal/config"
	dbpkg "github.com/radoraza-hash/hair-style-it/internal/db"
	"github.com/radoraza-hash/hair-style-it/internal/jobs"
	"github.com/radoraza-hash/hair-style-it/internal/logger"
	"github.com/radoraza-hash/hair-style-it/internal/middleware"
	"github.com/radoraza-hash/hair-style-it/internal/routes"
)

func main() {

	cfg := config.Load()

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	db, err := dbpkg.NewDB(cfg, zl)
	if err != nil {
		zl.Fatal("database connection failed", zap.Error(err))
	}

	rdb, err := cache.NewRedis(cfg)
	if err != nil {
		zl.Fatal("redis connection failed", zap.Error(err))
	}
	defer rdb.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(zl), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	shutdownWorkers := routes.RegisterRoutes(r, db, rdb, cfg, zl)

	retention, err := jobs.StartPlanningRetention(db, cfg.Timezone, cfg.PlanningRetentionDays, zl)
	if err != nil {
		zl.Fatal("failed to schedule planning retention", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("server shutdown", zap.Error(err))
	}

	<-retention.Stop().Done()
	shutdownWorkers()
}
