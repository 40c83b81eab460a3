package main

import (
	"net/http"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/nearlive/event-search-service/internal/application/search"
	"github.com/nearlive/event-search-service/internal/config"
	"github.com/nearlive/event-search-service/internal/infrastructure/caching/memory"
	redisstore "github.com/nearlive/event-search-service/internal/infrastructure/caching/redis"
	"github.com/nearlive/event-search-service/internal/infrastructure/upstream/ticketmaster"
	"github.com/nearlive/event-search-service/internal/logger"
	"github.com/nearlive/event-search-service/internal/transport/http/handlers"
	"github.com/nearlive/event-search-service/internal/transport/http/router"
)

// sysClock implements search.Clock using system time
type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// App holds all dependencies for the service
type App struct {
	Config *config.Config
	Server *http.Server

	redis *redisstore.Store
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("config load failed")
	}
	if cfg.TicketmasterAPIKey == "" {
		zlog.Warn().Msg("TICKETMASTER_API_KEY empty: searches will fail with config_error")
	}

	app := NewApp(cfg)
	defer func() {
		if app.redis != nil {
			_ = app.redis.Close()
		}
	}()

	zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal().Err(err).Msg("server crashed")
	}
}

func NewApp(cfg *config.Config) *App {
	// 1) Infrastructure
	var cache search.Cache
	var rds *redisstore.Store

	if cfg.RedisURL != "" {
		s, err := redisstore.New(cfg.RedisURL)
		if err != nil {
			zlog.Fatal().Err(err).Msg("redis cache init failed")
		}
		rds = s
		cache = s
		zlog.Info().Msg("redis result cache ready")
	} else {
		cache = memory.New(sysClock{})
		zlog.Info().Msg("in-process result cache ready")
	}

	source := ticketmaster.New(ticketmaster.Config{
		APIKey:  cfg.TicketmasterAPIKey,
		BaseURL: cfg.TicketmasterBaseURL,
		Timeout: cfg.UpstreamTimeout,
	})

	// 2) Application
	svc := search.New(source, cache, sysClock{}, time.Local, cfg.CacheTTL)

	// 3) Transport
	h := handlers.NewSearchHandler(svc)
	z := handlers.NewHealthHandler()

	// 4) Router + Server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router.New(h, z, cfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{Config: cfg, Server: srv, redis: rds}
}
