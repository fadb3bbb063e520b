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
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/calendar-booking/internal/audit"
	"github.com/BruksfildServices01/calendar-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/calendar-booking/internal/db"
	"github.com/BruksfildServices01/calendar-booking/internal/gauth"
	"github.com/BruksfildServices01/calendar-booking/internal/infra/gcal"
	infraRepo "github.com/BruksfildServices01/calendar-booking/internal/infra/repository"
	"github.com/BruksfildServices01/calendar-booking/internal/logger"
	"github.com/BruksfildServices01/calendar-booking/internal/middleware"
	"github.com/BruksfildServices01/calendar-booking/internal/routes"
	"github.com/BruksfildServices01/calendar-booking/internal/timezone"
)

func main() {

	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ------------------------------
	// Timeslot template
	// ------------------------------
	template, err := config.LoadTimeslots(cfg.TimeslotsFile)
	if err != nil {
		zl.Fatal("failed to load timeslots", zap.Error(err))
	}

	// ------------------------------
	// Calendar authorization
	// ------------------------------
	var store gauth.TokenStore = gauth.NewFileTokenStore(cfg.GoogleTokenFile)
	if cfg.DBUrl != "" {
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			zl.Fatal("failed to open database", zap.Error(err))
		}
		store = infraRepo.NewTokenGormRepository(db, cfg.GoogleCalendarID)
		zl.Info("using database token store")
	}

	oauthCfg, err := gauth.LoadConfig(cfg.GoogleCredentialsFile)
	if err != nil {
		zl.Fatal("failed to load google credentials", zap.Error(err))
	}

	tok, err := gauth.Authorize(ctx, oauthCfg, store, os.Stdin, os.Stdout)
	if err != nil {
		zl.Fatal("failed to authorize calendar access", zap.Error(err))
	}
	auth := gauth.TokenSource(context.Background(), oauthCfg, tok, store, zl)

	// ------------------------------
	// Optional rate limiter
	// ------------------------------
	var limiter *middleware.RateLimiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			zl.Warn("redis unreachable, rate limiter will fail open", zap.Error(err))
		}
		limiter = middleware.NewRateLimiter(rdb, cfg.RateLimit, time.Minute, "book", zl)
	}

	dispatcher := audit.NewDispatcher(audit.New(zl), zl)
	defer dispatcher.Close()

	// ------------------------------
	// HTTP
	// ------------------------------
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:   cfg,
		Calendar: gcal.NewClient(cfg.GoogleCalendarID, zl),
		Auth:     auth,
		Clock:    timezone.Now,
		Template: template,
		Audit:    dispatcher,
		Limiter:  limiter,
		Logger:   zl,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("http server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("http server shutdown error", zap.Error(err))
	}
	zl.Info("server stopped")
}
