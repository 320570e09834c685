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

	"github.com/cyclelog/internal/config"
	"github.com/cyclelog/internal/db"
	"github.com/cyclelog/internal/handler"
	"github.com/cyclelog/internal/logger"
	"github.com/cyclelog/internal/router"
	"github.com/cyclelog/internal/service"
	"github.com/cyclelog/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat, "cyclelog")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}

	sqlStore := store.NewSQLStore(db.DB)
	persister := service.NewPersister(zlog.Named("persist"), cfg.PersistTimeout)

	cycles := service.NewCycleService(sqlStore, persister, zlog.Named("cycle"))
	reviews := service.NewReviewService(sqlStore, cycles, persister, zlog.Named("review"))
	notes := service.NewLoveNoteService(sqlStore, persister, zlog.Named("notes"))

	ctx := context.Background()
	cycles.Load(ctx)
	reviews.Load(ctx)
	notes.Load(ctx)

	api := handler.NewAPI(cycles, reviews, notes, cfg.Location())
	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      router.SetupRouter(api, zlog.Named("http")),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Info("starting server",
			zap.String("address", cfg.ListenAddr),
			zap.String("database", cfg.DatabasePath),
			zap.String("timezone", cfg.Location().String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to run server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	zlog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("server shutdown error", zap.Error(err))
	}

	// 等待剩余的写入落盘
	persister.Close()
	zlog.Info("server stopped")
}
