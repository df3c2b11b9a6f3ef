// cmd/chatbot-api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"ecommerce-chatbot/internal/chat"
	"ecommerce-chatbot/internal/common/config"
	"ecommerce-chatbot/internal/common/database"
	"ecommerce-chatbot/internal/common/genai"
	"ecommerce-chatbot/internal/common/logger"
	"ecommerce-chatbot/internal/common/observability"
	"ecommerce-chatbot/internal/dataset"
	"ecommerce-chatbot/internal/engine/intent"
	"ecommerce-chatbot/internal/models"
	"ecommerce-chatbot/internal/server"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting chatbot API...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Load the dataset snapshot (fatal on any missing resource) ---
	var ds *models.Dataset
	switch cfg.Dataset.Source {
	case "postgres":
		pg, err := database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			zapLog.Fatal("postgres init failed", zap.Error(err))
		}
		pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err = pg.Ping(pingCtx)
		cancel()
		if err != nil {
			zapLog.Fatal("postgres unreachable", zap.Error(err))
		}
		ds, err = dataset.LoadPostgres(ctx, pg.GetDB())
		if err != nil {
			zapLog.Fatal("dataset load failed", zap.Error(err))
		}
		pg.Close()
	default:
		ds, err = dataset.LoadCSV(cfg.Dataset.Dir)
		if err != nil {
			zapLog.Fatal("dataset load failed", zap.Error(err))
		}
	}
	zapLog.Info("dataset loaded",
		zap.Int("users", len(ds.Users)),
		zap.Int("orders", len(ds.Orders)),
		zap.Int("orderItems", len(ds.OrderItems)),
		zap.Int("products", len(ds.Products)),
	)

	// --- Generation collaborator (degraded mode when unconfigured) ---
	generator := genai.NewClient(cfg.GenAI, log)
	if generator.Configured() {
		zapLog.Info("generation API configured", zap.String("model", cfg.GenAI.Model))
	} else {
		zapLog.Warn("generation API key missing, chat responses degraded to fixed unavailability message")
	}

	// --- Optional response cache ---
	var cache chat.Cache
	if cfg.Cache.Enabled {
		redisClient, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			zapLog.Fatal("redis init failed", zap.Error(err))
		}
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = redisClient.Ping(pingCtx)
		cancel()
		if err != nil {
			// Cache is an optimization; a dead Redis must not block startup.
			zapLog.Warn("redis unreachable, response cache disabled", zap.Error(err))
		} else {
			cache = chat.NewRedisCache(redisClient)
			zapLog.Info("response cache enabled", zap.Int("ttlSeconds", cfg.Cache.TTL))
		}
	}

	resolver := intent.NewResolver(ds)
	chatSvc := chat.NewService(resolver, generator, cache, time.Duration(cfg.Cache.TTL)*time.Second, log)
	srv := server.New(cfg.Server, chatSvc, obs, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	case sig := <-sigCh:
		zapLog.Info("shutting down", zap.String("signal", sig.String()))
		shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zapLog.Error("graceful shutdown failed", zap.Error(err))
		}
	}

	zapLog.Info("chatbot API stopped")
}
