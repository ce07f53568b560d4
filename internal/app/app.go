package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/moviedb/internal/catalog"
	"github.com/MrSnakeDoc/moviedb/internal/config"
	"github.com/MrSnakeDoc/moviedb/internal/domain"
	"github.com/MrSnakeDoc/moviedb/internal/form"
	"github.com/MrSnakeDoc/moviedb/internal/httpserver"
	"github.com/MrSnakeDoc/moviedb/internal/httpserver/deps"
	"github.com/MrSnakeDoc/moviedb/internal/logger"
	"github.com/MrSnakeDoc/moviedb/internal/redis"
	"github.com/MrSnakeDoc/moviedb/internal/seed"
	redisstore "github.com/MrSnakeDoc/moviedb/internal/store/redis"
	"github.com/MrSnakeDoc/moviedb/internal/utils"
	"github.com/MrSnakeDoc/moviedb/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	catalog     *catalog.Store
	form        *form.Form
}

func New() (*App, error) {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Redis is an optional seed source; it is only read once below.
	var (
		redisClient *goredis.Client
		reader      seed.MovieReader
	)
	if cfg.RedisEnabled() {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(context.Background(), redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		switch {
		case err == nil:
			loggerClient.Info("Redis initialized successfully")
			redisClient = client
			reader = redisstore.NewStore(client)
		case cfg.SeedFile != "":
			loggerClient.Warn("redis unavailable, seeding from file only", logger.Error(err))
		default:
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
	}

	seeder := seed.NewSeeder(cfg.SeedFile, reader, loggerClient)
	result, err := seeder.Seed(context.Background())
	if err != nil {
		if redisClient != nil {
			utils.CloseLogged(redisClient, "redis", loggerClient)
		}
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	store := catalog.New(result.Movies, loggerClient)
	loggerClient.Info("catalog seeded",
		logger.Int("movies", store.Count()),
		logger.String("source", result.Source))

	movieForm := form.New(store, loggerClient,
		form.WithClearAllGenresOnReset(cfg.ClearAllGenresOnReset))

	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		AllowedHosts:    cfg.AllowedHosts,
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		CORSOrigins:     cfg.CORSOrigins,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
		Catalog:         store,
		Form:            movieForm,
		SeedSource:      result.Source,
		RedisClient:     redisClient,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		catalog:     store,
		form:        movieForm,
	}, nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting moviedb v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("moviedb %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snapshots := a.catalog.Subscribe()
	watchDone := make(chan struct{})
	go func() {
		defer close(watchDone)
		a.watchCatalog(snapshots)
	}()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to stop server: %w", err)
	}

	// Closing the streams ends watchCatalog.
	a.form.Close()
	a.catalog.Close()
	<-watchDone

	if a.redisClient != nil {
		utils.CloseLogged(a.redisClient, "redis", a.logger)
	}

	if runErr != nil {
		return runErr
	}
	a.logger.Info("✅ moviedb stopped cleanly")
	return nil
}

// watchCatalog logs every catalog snapshot until the stream is closed.
func (a *App) watchCatalog(snapshots <-chan []domain.Movie) {
	for movies := range snapshots {
		favorites := 0
		for _, m := range movies {
			if m.IsFavorite {
				favorites++
			}
		}
		a.logger.Debug("catalog changed",
			logger.Int("movies", len(movies)),
			logger.Int("favorites", favorites))
	}
}
