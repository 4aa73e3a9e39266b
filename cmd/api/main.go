package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sayalimunde/mini-lms/internal/api"
	"github.com/sayalimunde/mini-lms/internal/auth"
	"github.com/sayalimunde/mini-lms/internal/config"
	"github.com/sayalimunde/mini-lms/internal/db"
	"github.com/sayalimunde/mini-lms/internal/logger"
	"github.com/sayalimunde/mini-lms/internal/metrics"
	"github.com/sayalimunde/mini-lms/internal/middleware"
	"github.com/sayalimunde/mini-lms/internal/repository/postgres"
	"github.com/sayalimunde/mini-lms/internal/services"
	"github.com/sayalimunde/mini-lms/internal/session"
	"github.com/sayalimunde/mini-lms/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Migrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	sessions := session.NewRedisStore(rdb)

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	tm := auth.NewTokenManager(cfg.JWTAccess, cfg.JWTRefresh, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)

	authSvc := services.NewAuthService(repos.Users, tm, sessions, cfg.RefreshTTL)
	courseSvc := services.NewCourseService(repos.Courses, repos.Lessons, wp)
	lessonSvc := services.NewLessonService(repos.Courses, repos.Lessons, wp)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:       cfg,
		Auth:      middleware.NewAuthMiddleware(tm),
		AuthSvc:   authSvc,
		CourseSvc: courseSvc,
		LessonSvc: lessonSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
