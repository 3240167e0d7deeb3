// Package engine orchestrates the background jobs that feed the marketplace:
// listing ingestion from the aggregator and market table refreshes from
// stored listing aggregates.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kejahub/keja-match/internal/aggregator"
	"github.com/kejahub/keja-match/internal/metrics"
	"github.com/kejahub/keja-match/internal/store"
	"github.com/kejahub/keja-match/pkg/market"
)

const (
	defaultMaxCallsPerCycle  = 50
	defaultPageSize          = 50
	defaultRefreshWindowDays = 90
	defaultMinSampleSize     = 3

	jobIngestion     = "ingestion"
	jobMarketRefresh = "market_refresh"
)

// Engine orchestrates ingestion and market refresh.
type Engine struct {
	store    store.Store
	provider aggregator.Provider
	markets  *market.Holder
	log      *slog.Logger

	locations         []string
	pageSize          int
	maxCallsPerCycle  int
	refreshWindowDays int
	minSampleSize     int
	staggerOffset     time.Duration
}

// NewEngine creates a new Engine with injected dependencies. The markets
// holder receives refreshed tables; its current snapshot also seeds the
// location list when none is configured.
func NewEngine(
	s store.Store,
	p aggregator.Provider,
	markets *market.Holder,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:             s,
		provider:          p,
		markets:           markets,
		log:               slog.Default(),
		pageSize:          defaultPageSize,
		maxCallsPerCycle:  defaultMaxCallsPerCycle,
		refreshWindowDays: defaultRefreshWindowDays,
		minSampleSize:     defaultMinSampleSize,
		staggerOffset:     5 * time.Second,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if len(eng.locations) == 0 {
		eng.locations = markets.Get().Locations()
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithLocations overrides the set of locations polled during ingestion.
func WithLocations(locations []string) EngineOption {
	return func(e *Engine) {
		e.locations = locations
	}
}

// WithPageSize sets the feed page size.
func WithPageSize(n int) EngineOption {
	return func(e *Engine) {
		e.pageSize = n
	}
}

// WithMaxCallsPerCycle sets the maximum feed pages per ingestion cycle.
func WithMaxCallsPerCycle(n int) EngineOption {
	return func(e *Engine) {
		e.maxCallsPerCycle = n
	}
}

// WithRefreshWindowDays sets the listing window used for market aggregates.
func WithRefreshWindowDays(days int) EngineOption {
	return func(e *Engine) {
		e.refreshWindowDays = days
	}
}

// WithMinSampleSize sets the minimum listing count per location before a
// market refresh overrides the reference averages.
func WithMinSampleSize(n int) EngineOption {
	return func(e *Engine) {
		e.minSampleSize = n
	}
}

// WithStaggerOffset sets the delay between polling each location.
func WithStaggerOffset(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.staggerOffset = d
	}
}

// RunIngestion pulls every configured location's feed and upserts the
// listings. Each run is recorded as a job_runs row.
func (eng *Engine) RunIngestion(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.IngestionDuration.Observe(time.Since(start).Seconds())
	}()

	runID, err := eng.store.InsertJobRun(ctx, jobIngestion)
	if err != nil {
		return fmt.Errorf("recording job start: %w", err)
	}

	ingested, runErr := eng.ingestAll(ctx)

	status, errText := "succeeded", ""
	if runErr != nil {
		status, errText = "failed", runErr.Error()
	}
	if err := eng.store.CompleteJobRun(ctx, runID, status, errText, ingested); err != nil {
		eng.log.Error("recording job completion failed", "job", jobIngestion, "error", err)
	}

	return runErr
}

func (eng *Engine) ingestAll(ctx context.Context) (int, error) {
	var ingested, callsUsed int

	for i, loc := range eng.locations {
		if ctx.Err() != nil {
			return ingested, ctx.Err()
		}

		if callsUsed >= eng.maxCallsPerCycle {
			eng.log.Warn("cycle budget exhausted",
				"calls_used", callsUsed,
				"max_calls_per_cycle", eng.maxCallsPerCycle,
			)
			break
		}

		eng.log.Info("polling location feed", "location", loc)

		n, calls, pollErr := eng.pollLocation(ctx, loc, eng.maxCallsPerCycle-callsUsed)
		ingested += n
		callsUsed += calls

		if pollErr != nil {
			if errors.Is(pollErr, aggregator.ErrDailyLimitReached) {
				eng.log.Warn("daily feed limit reached, stopping ingestion",
					"location", loc,
					"calls_used", callsUsed,
				)
				break
			}
			eng.log.Error("location poll failed", "location", loc, "error", pollErr)
			metrics.IngestionErrorsTotal.Inc()
			continue
		}

		// Stagger between locations to avoid feed bursts.
		if i < len(eng.locations)-1 && eng.staggerOffset > 0 {
			select {
			case <-ctx.Done():
				return ingested, ctx.Err()
			case <-time.After(eng.staggerOffset):
			}
		}
	}

	return ingested, nil
}

// pollLocation pages through one location's feed until exhausted or the call
// budget runs out. Returns listings ingested and feed calls used.
func (eng *Engine) pollLocation(ctx context.Context, location string, budget int) (int, int, error) {
	var ingested, calls, offset int

	for calls < budget {
		resp, err := eng.provider.FetchListings(ctx, aggregator.FetchRequest{
			Location: location,
			Limit:    eng.pageSize,
			Offset:   offset,
		})
		calls++
		if err != nil {
			return ingested, calls, fmt.Errorf("fetching feed page: %w", err)
		}

		for _, l := range aggregator.ToListings(resp.Listings) {
			if err := eng.store.UpsertListing(ctx, &l); err != nil {
				eng.log.Error("upsert failed", "source_ref", l.SourceRef, "error", err)
				metrics.IngestionErrorsTotal.Inc()
				continue
			}
			metrics.IngestionListingsTotal.Inc()
			ingested++
		}

		if !resp.HasMore {
			break
		}
		offset += eng.pageSize
	}

	return ingested, calls, nil
}

// RunMarketRefresh recomputes per-location aggregates from stored listings
// and swaps in a fresh market table. Locations with too few listings keep
// their reference averages.
func (eng *Engine) RunMarketRefresh(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.MarketRefreshDuration.Observe(time.Since(start).Seconds())
	}()

	runID, err := eng.store.InsertJobRun(ctx, jobMarketRefresh)
	if err != nil {
		return fmt.Errorf("recording job start: %w", err)
	}

	updated, runErr := eng.refreshMarket(ctx)

	status, errText := "succeeded", ""
	if runErr != nil {
		status, errText = "failed", runErr.Error()
	}
	if err := eng.store.CompleteJobRun(ctx, runID, status, errText, updated); err != nil {
		eng.log.Error("recording job completion failed", "job", jobMarketRefresh, "error", err)
	}

	return runErr
}

func (eng *Engine) refreshMarket(ctx context.Context) (int, error) {
	stats, err := eng.store.LocationPriceStats(ctx, eng.refreshWindowDays)
	if err != nil {
		return 0, fmt.Errorf("computing location stats: %w", err)
	}

	eligible := stats[:0]
	for _, st := range stats {
		if st.ListingCount >= eng.minSampleSize {
			eligible = append(eligible, st)
		}
	}

	next := eng.markets.Get().WithStats(eligible)
	eng.markets.Swap(next)

	metrics.MarketLocationsTracked.Set(float64(next.Len()))
	eng.log.Info("market table refreshed",
		"locations_updated", len(eligible),
		"locations_total", next.Len(),
	)

	return len(eligible), nil
}
