package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-ordering-assistant/config"
	_ "restaurant-ordering-assistant/docs" // Swagger docs
	"restaurant-ordering-assistant/internal/agent/assistant"
	cartUsecase "restaurant-ordering-assistant/internal/cart/usecase"
	chatHTTP "restaurant-ordering-assistant/internal/chat/delivery/http"
	chatUsecase "restaurant-ordering-assistant/internal/chat/usecase"
	"restaurant-ordering-assistant/internal/httpserver"
	menuFile "restaurant-ordering-assistant/internal/menu/repository/file"
	menuUsecase "restaurant-ordering-assistant/internal/menu/usecase"
	"restaurant-ordering-assistant/internal/middleware"
	"restaurant-ordering-assistant/internal/router"
	sessionRedis "restaurant-ordering-assistant/internal/session/repository/redis"
	"restaurant-ordering-assistant/internal/test"
	"restaurant-ordering-assistant/pkg/llmprovider"
	"restaurant-ordering-assistant/pkg/log"
	pkgRedis "restaurant-ordering-assistant/pkg/redis"
)

const defaultMenuCacheTTL = 5 * time.Minute

// @title       Restaurant Ordering Assistant API
// @description Conversational menu and cart assistant backed by Redis sessions and pluggable LLM providers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Restaurant Ordering Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Session store
	redisClient, err := pkgRedis.Connect(ctx, pkgRedis.Config{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer func() {
		if cerr := redisClient.Close(); cerr != nil {
			logger.Warnf(context.Background(), "Failed to close Redis client: %v", cerr)
		}
	}()
	logger.Infof(ctx, "Redis connected at %s", cfg.Redis.Addr())

	sessionRepo := sessionRedis.New(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second, logger)

	// 4. Menu & cart domains
	cacheTTL := defaultMenuCacheTTL
	if cfg.Menu.CacheTTL != "" {
		if d, perr := time.ParseDuration(cfg.Menu.CacheTTL); perr != nil {
			logger.Warnf(ctx, "Invalid menu cache TTL %q, using %s: %v", cfg.Menu.CacheTTL, defaultMenuCacheTTL, perr)
		} else {
			cacheTTL = d
		}
	}
	menuUC := menuUsecase.New(menuFile.New(cfg.Menu.FilePath, logger), cacheTTL, logger)
	cartUC := cartUsecase.New(sessionRepo, logger)

	// 5. LLM providers
	providers, initErrs, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	for _, ierr := range initErrs {
		logger.Warnf(ctx, "LLM provider skipped: %v", ierr)
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}
	llm := llmprovider.NewManager(providers, llmprovider.NewManagerConfig(&cfg.LLM), logger)

	// 6. Agents
	semanticRouter := router.New(router.NewClassifier(llm, sessionRepo, logger), logger)
	menuAgent := assistant.NewMenuAgent(llm, menuUC, logger)
	cartAgent := assistant.NewCartAgent(llm, cartUC, menuUC, logger)

	// 7. Chat domain
	chatUC := chatUsecase.New(sessionRepo, semanticRouter, menuAgent, cartAgent, logger)
	chatHandler := chatHTTP.New(logger, chatUC)

	var testHandler test.Handler
	if !cfg.IsProduction() {
		testHandler = test.New(logger, semanticRouter, sessionRepo, cartUC)
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.RateLimit),
		Store:       sessionRepo,
		ChatHandler: chatHandler,
		TestHandler: testHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
