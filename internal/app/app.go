package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/casefolio/casefolio/internal/catalog"
	"github.com/casefolio/casefolio/internal/config"
	"github.com/casefolio/casefolio/internal/domain"
	"github.com/casefolio/casefolio/internal/httpserver"
	"github.com/casefolio/casefolio/internal/httpserver/deps"
	"github.com/casefolio/casefolio/internal/ingest"
	"github.com/casefolio/casefolio/internal/logger"
	"github.com/casefolio/casefolio/internal/moderation"
	"github.com/casefolio/casefolio/internal/scheduler"
	"github.com/casefolio/casefolio/internal/sources"
	"github.com/casefolio/casefolio/internal/store/file"
	redisstore "github.com/casefolio/casefolio/internal/store/redis"
	"github.com/casefolio/casefolio/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	catalog     *catalog.Catalog
	checker     *scheduler.FeedChecker
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Load the published catalog. A broken data file degrades to an empty
	// catalog so the service still comes up and can be repaired live.
	recordStore := file.NewCaseStudyStore(cfg.DataFile)
	cat := catalog.New()
	records, err := recordStore.LoadRecords()
	if err != nil {
		loggerClient.Warn("catalog load failed, starting empty", logger.Error(err))
	}
	cat.Replace(records)
	loggerClient.Info("catalog loaded", logger.Int("records", cat.Count()))

	// Redis is an optional feed-state cache; a missing or unreachable
	// instance only disables conditional fetches.
	var redisClient *goredis.Client
	var stateStore ingest.StateStore
	if cfg.RedisAddr != "" {
		redisClient, err = redisstore.Connect(redisstore.ConnectOptions{
			Addr:           cfg.RedisAddr,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
		}, loggerClient)
		if err != nil {
			loggerClient.Warn("redis unavailable, feed-state cache disabled",
				logger.Error(err))
			redisClient = nil
		} else {
			stateStore = redisstore.NewFeedStateStore(redisClient, redisstore.DefaultStateTTL)
		}
	} else {
		loggerClient.Info("redis not configured, feed-state cache disabled")
	}

	pendingStore := file.NewPendingStore(cfg.PendingFile)
	engine := moderation.NewEngine(
		cat,
		recordStore,
		pendingStore,
		domain.DefaultAccessClassifier(),
		loggerClient,
	)

	// A bad sources file is an operator error; refuse to start on it.
	srcs, err := sources.NewLoader(cfg.SourcesFile).Load()
	if err != nil {
		loggerClient.Errorf("Failed to load feed sources: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("feed sources loaded", logger.Int("count", len(srcs)))

	monitor := ingest.NewMonitor(
		srcs,
		ingest.NewFetcher(cfg.FetchTimeout, cfg.UserAgent),
		ingest.NewScorer(cfg.ScoreThreshold),
		cat,
		engine,
		stateStore,
		loggerClient,
		cfg.MaxConcurrentFetch,
	)

	checkTrigger := make(chan struct{}, 1)
	checker := scheduler.NewFeedChecker(monitor, loggerClient, cfg.CheckInterval, checkTrigger)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		AllowedHosts: cfg.AllowedHosts,
		AdminCIDRS:   cfg.AdminCIDRS,
		TrustProxy:   cfg.TrustProxy,
		RedisClient:  redisClient,
		Catalog:      cat,
		Moderation:   engine,
		CheckTrigger: checkTrigger,
		SubmitBurst:  cfg.SubmitBurst,
		SubmitPerMin: cfg.SubmitPerMin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		catalog:     cat,
		checker:     checker,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Casefolio v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Casefolio %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the feed checker (runs one check immediately, then on interval)
	if err := a.checker.Start(ctx); err != nil {
		return fmt.Errorf("failed to start feed checker: %w", err)
	}
	a.logger.Info("feed checker started",
		logger.Duration("interval", a.cfg.CheckInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.checker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Casefolio stopped cleanly")
	return nil
}
