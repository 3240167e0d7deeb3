package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/kejahub/keja-match/internal/aggregator"
	"github.com/kejahub/keja-match/internal/api/handlers"
	"github.com/kejahub/keja-match/internal/api/middleware"
	"github.com/kejahub/keja-match/internal/config"
	"github.com/kejahub/keja-match/internal/engine"
	"github.com/kejahub/keja-match/internal/notify"
	"github.com/kejahub/keja-match/internal/store"
	"github.com/kejahub/keja-match/pkg/logger"
	"github.com/kejahub/keja-match/pkg/market"
	"github.com/kejahub/keja-match/pkg/recommend"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and background jobs",
	RunE: func(*cobra.Command, []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
		slog.SetDefault(log)
		return runServe(cfg, log)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cfg *config.Config, log *slog.Logger) error {
	ctx := context.Background()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	table, err := loadMarketTable(cfg)
	if err != nil {
		return err
	}
	markets := market.NewHolder(table)

	provider, err := buildProvider(cfg)
	if err != nil {
		return err
	}

	var notifier notify.Notifier = notify.NewNoOpNotifier(log)
	if cfg.Notifications.Webhook.Enabled {
		notifier = notify.NewWebhookNotifier(
			cfg.Notifications.Webhook.URL,
			notify.WithHeaders(cfg.Notifications.Webhook.Headers),
		)
	}

	eng := engine.NewEngine(st, provider, markets,
		engine.WithLogger(log),
		engine.WithLocations(cfg.Aggregator.Locations),
		engine.WithPageSize(cfg.Aggregator.PageSize),
		engine.WithMaxCallsPerCycle(cfg.Aggregator.MaxCallsPerCycle),
		engine.WithStaggerOffset(cfg.Aggregator.StaggerOffset),
		engine.WithRefreshWindowDays(cfg.Market.RefreshWindowDays),
		engine.WithMinSampleSize(cfg.Market.MinSampleSize),
	)
	sched, err := engine.NewScheduler(
		eng,
		cfg.Schedule.IngestionInterval,
		cfg.Schedule.MarketRefreshInterval,
		log,
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	e := buildServer(cfg, log, st, markets, notifier)

	sched.Start()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		log.Info("server starting", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	stopped := sched.Stop()
	select {
	case <-stopped.Done():
	case <-time.After(shutdownTimeout):
		log.Warn("scheduler jobs did not finish before timeout")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// scoringWeights maps the configured factor weights onto the engine's
// weight set.
func scoringWeights(cfg *config.Config) recommend.Weights {
	return recommend.Weights{
		Location:   cfg.Scoring.Location,
		Type:       cfg.Scoring.Type,
		Budget:     cfg.Scoring.Budget,
		Bedrooms:   cfg.Scoring.Bedrooms,
		Engagement: cfg.Scoring.Engagement,
	}
}

// buildProvider selects the listing feed backend from configuration. HTTP
// feeds get a rate limiter sized from the partner quota settings.
func buildProvider(cfg *config.Config) (aggregator.Provider, error) {
	switch cfg.Aggregator.Source {
	case "http":
		limiter := aggregator.NewRateLimiter(
			cfg.Aggregator.RateLimit.PerSecond,
			cfg.Aggregator.RateLimit.Burst,
			cfg.Aggregator.RateLimit.DailyLimit,
		)
		return aggregator.NewHTTPProvider(
			cfg.Aggregator.Endpoint,
			cfg.Aggregator.APIKey,
			aggregator.WithRateLimiter(limiter),
		), nil
	default:
		if cfg.Aggregator.FixturesPath != "" {
			p, err := aggregator.NewFixtureProviderFromFile(cfg.Aggregator.FixturesPath)
			if err != nil {
				return nil, fmt.Errorf("loading fixtures: %w", err)
			}
			return p, nil
		}
		p, err := aggregator.NewFixtureProvider()
		if err != nil {
			return nil, fmt.Errorf("loading built-in fixtures: %w", err)
		}
		return p, nil
	}
}

func buildServer(
	cfg *config.Config,
	log *slog.Logger,
	st *store.PostgresStore,
	markets *market.Holder,
	notifier notify.Notifier,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())
	e.Use(middleware.Recovery(log))

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Keja Match API", Version))
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(st))
	handlers.RegisterIntentRoutes(api, handlers.NewIntentHandler(markets, st, log))
	handlers.RegisterRecommendRoutes(api, handlers.NewRecommendHandler(
		st, markets,
		scoringWeights(cfg),
		cfg.Recommendations.DefaultLimit,
		cfg.Recommendations.CandidatePool,
	))
	handlers.RegisterPreferenceRoutes(api, handlers.NewPreferencesHandler(st))
	handlers.RegisterApplicationRoutes(api, handlers.NewApplicationsHandler(st, notifier, log))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(st))

	return e
}
