package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/axelse03-gif/reybanpac/chat"
	"github.com/axelse03-gif/reybanpac/config"
	"github.com/axelse03-gif/reybanpac/handlers/chatbot"
	"github.com/axelse03-gif/reybanpac/handlers/home"
	"github.com/axelse03-gif/reybanpac/handlers/middleware"
	"github.com/axelse03-gif/reybanpac/handlers/referrals"
	"github.com/axelse03-gif/reybanpac/metrics"
	"github.com/axelse03-gif/reybanpac/migrations"
	"github.com/axelse03-gif/reybanpac/seed"
	"github.com/axelse03-gif/reybanpac/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const sweepInterval = time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := utils.ConnectDatabase(cfg)
	if err != nil {
		return err
	}

	if err := migrations.MigrateAll(db); err != nil {
		return err
	}

	// Seed the mock records
	if err := seed.SeedReferrals(db, logger); err != nil {
		return err
	}
	if err := seed.SeedNews(db, logger); err != nil {
		return err
	}

	completer, err := newCompleter(ctx, cfg, logger)
	if err != nil {
		return err
	}
	sessions := chat.NewSessions(completer, logger)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if origins := cfg.AllowedOrigins(); len(origins) == 0 || slices.Contains(origins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	home.RegisterHomeRoutes(r, &home.Handler{DB: db, Logger: logger})
	referrals.RegisterReferralsRoutes(r, &referrals.Handler{DB: db, Logger: logger})
	chatbot.RegisterChatRoutes(r, &chatbot.Handler{
		Sessions: sessions,
		Secret:   []byte(cfg.SessionSecret),
		TTL:      cfg.SessionTTL,
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("db_driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return sessions.RunSweeper(gctx, sweepInterval, cfg.SessionTTL)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newCompleter(ctx context.Context, cfg config.Config, logger *zap.Logger) (chat.Completer, error) {
	if cfg.APIKey == "" {
		logger.Warn("API_KEY environment variable not set; chatbot replies are disabled")
		return chat.NotConfigured(), nil
	}

	completer, err := chat.NewGenAICompleter(ctx, cfg.APIKey, cfg.GeminiModel)
	if err != nil {
		return nil, err
	}
	logger.Info("chatbot completer ready", zap.String("backend", completer.Name()))
	return completer, nil
}
