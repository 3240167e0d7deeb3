package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kejahub/keja-match/internal/aggregator"
	aggMocks "github.com/kejahub/keja-match/internal/aggregator/mocks"
	storeMocks "github.com/kejahub/keja-match/internal/store/mocks"
	"github.com/kejahub/keja-match/pkg/market"
	domain "github.com/kejahub/keja-match/pkg/types"
)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testHolder() *market.Holder {
	return market.NewHolder(market.NewTable(map[string]market.Stats{
		"nairobi": {AvgPrice: 12_500_000, GrowthPct: 11.2, Activity: domain.ActivityHot},
		"kisumu":  {AvgPrice: 5_600_000, GrowthPct: 9.1, Activity: domain.ActivityHot},
	}))
}

func feedPage(refs []string, hasMore bool) *aggregator.FetchResponse {
	listings := make([]aggregator.SourceListing, 0, len(refs))
	for _, ref := range refs {
		listings = append(listings, aggregator.SourceListing{
			Ref:          ref,
			Title:        "Listing " + ref,
			Price:        5_000_000,
			Location:     "nairobi",
			PropertyType: "apartment",
			Bedrooms:     2,
		})
	}
	return &aggregator.FetchResponse{
		Listings: listings,
		Total:    len(listings),
		HasMore:  hasMore,
	}
}

func TestNewEngine_Defaults(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mp := aggMocks.NewMockProvider(t)

	eng := NewEngine(ms, mp, testHolder())
	assert.Equal(t, defaultPageSize, eng.pageSize)
	assert.Equal(t, defaultMaxCallsPerCycle, eng.maxCallsPerCycle)
	assert.Equal(t, defaultRefreshWindowDays, eng.refreshWindowDays)
	assert.Equal(t, defaultMinSampleSize, eng.minSampleSize)
	assert.Equal(t, []string{"kisumu", "nairobi"}, eng.locations, "locations seeded from market table")
	assert.NotNil(t, eng.log)
}

func TestNewEngine_WithOptions(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mp := aggMocks.NewMockProvider(t)

	l := quietLogger()
	eng := NewEngine(ms, mp, testHolder(),
		WithLogger(l),
		WithLocations([]string{"thika"}),
		WithPageSize(25),
		WithMaxCallsPerCycle(10),
		WithRefreshWindowDays(30),
		WithMinSampleSize(5),
		WithStaggerOffset(time.Second),
	)

	assert.Same(t, l, eng.log)
	assert.Equal(t, []string{"thika"}, eng.locations)
	assert.Equal(t, 25, eng.pageSize)
	assert.Equal(t, 10, eng.maxCallsPerCycle)
	assert.Equal(t, 30, eng.refreshWindowDays)
	assert.Equal(t, 5, eng.minSampleSize)
	assert.Equal(t, time.Second, eng.staggerOffset)
}

func TestRunIngestion_TwoLocations(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mp := aggMocks.NewMockProvider(t)
	eng := NewEngine(ms, mp, testHolder(),
		WithLogger(quietLogger()),
		WithStaggerOffset(0),
	)

	ms.EXPECT().InsertJobRun(mock.Anything, "ingestion").Return("run-1", nil).Once()

	mp.EXPECT().
		FetchListings(mock.Anything, aggregator.FetchRequest{Location: "kisumu", Limit: 50}).
		Return(feedPage([]string{"ksm-1"}, false), nil).Once()
	mp.EXPECT().
		FetchListings(mock.Anything, aggregator.FetchRequest{Location: "nairobi", Limit: 50}).
		Return(feedPage([]string{"nbo-1", "nbo-2"}, false), nil).Once()

	var upserted []string
	ms.EXPECT().UpsertListing(mock.Anything, mock.Anything).
		Run(func(_ context.Context, l *domain.Listing) {
			upserted = append(upserted, l.SourceRef)
		}).
		Return(nil).Times(3)

	ms.EXPECT().CompleteJobRun(mock.Anything, "run-1", "succeeded", "", 3).Return(nil).Once()

	require.NoError(t, eng.RunIngestion(context.Background()))
	assert.ElementsMatch(t, []string{"ksm-1", "nbo-1", "nbo-2"}, upserted)
}

func TestRunIngestion_PagesThroughFeed(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mp := aggMocks.NewMockProvider(t)
	eng := NewEngine(ms, mp, testHolder(),
		WithLogger(quietLogger()),
		WithLocations([]string{"nairobi"}),
		WithPageSize(2),
		WithStaggerOffset(0),
	)

	ms.EXPECT().InsertJobRun(mock.Anything, "ingestion").Return("run-1", nil).Once()

	mp.EXPECT().
		FetchListings(mock.Anything, aggregator.FetchRequest{Location: "nairobi", Limit: 2}).
		Return(feedPage([]string{"a", "b"}, true), nil).Once()
	mp.EXPECT().
		FetchListings(mock.Anything, aggregator.FetchRequest{Location: "nairobi", Limit: 2, Offset: 2}).
		Return(feedPage([]string{"c"}, false), nil).Once()

	ms.EXPECT().UpsertListing(mock.Anything, mock.Anything).Return(nil).Times(3)
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-1", "succeeded", "", 3).Return(nil).Once()

	require.NoError(t, eng.RunIngestion(context.Background()))
}

func TestRunIngestion_CycleBudgetExhausted(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mp := aggMocks.NewMockProvider(t)
	eng := NewEngine(ms, mp, testHolder(),
		WithLogger(quietLogger()),
		WithLocations([]string{"nairobi", "kisumu"}),
		WithPageSize(1),
		WithMaxCallsPerCycle(1),
		WithStaggerOffset(0),
	)

	ms.EXPECT().InsertJobRun(mock.Anything, "ingestion").Return("run-1", nil).Once()

	// Budget of one call: the first page is fetched, then the cycle stops
	// before the second location.
	mp.EXPECT().
		FetchListings(mock.Anything, aggregator.FetchRequest{Location: "nairobi", Limit: 1}).
		Return(feedPage([]string{"a"}, true), nil).Once()

	ms.EXPECT().UpsertListing(mock.Anything, mock.Anything).Return(nil).Once()
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-1", "succeeded", "", 1).Return(nil).Once()

	require.NoError(t, eng.RunIngestion(context.Background()))
}

func TestRunIngestion_DailyLimitStopsCycle(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mp := aggMocks.NewMockProvider(t)
	eng := NewEngine(ms, mp, testHolder(),
		WithLogger(quietLogger()),
		WithLocations([]string{"nairobi", "kisumu"}),
		WithStaggerOffset(0),
	)

	ms.EXPECT().InsertJobRun(mock.Anything, "ingestion").Return("run-1", nil).Once()

	mp.EXPECT().
		FetchListings(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("rate limit: %w", aggregator.ErrDailyLimitReached)).Once()

	// Second location is never polled.
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-1", "succeeded", "", 0).Return(nil).Once()

	require.NoError(t, eng.RunIngestion(context.Background()))
}

func TestRunIngestion_FeedErrorContinues(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mp := aggMocks.NewMockProvider(t)
	eng := NewEngine(ms, mp, testHolder(),
		WithLogger(quietLogger()),
		WithLocations([]string{"nairobi", "kisumu"}),
		WithStaggerOffset(0),
	)

	ms.EXPECT().InsertJobRun(mock.Anything, "ingestion").Return("run-1", nil).Once()

	mp.EXPECT().
		FetchListings(mock.Anything, aggregator.FetchRequest{Location: "nairobi", Limit: 50}).
		Return(nil, errors.New("feed unavailable")).Once()
	mp.EXPECT().
		FetchListings(mock.Anything, aggregator.FetchRequest{Location: "kisumu", Limit: 50}).
		Return(feedPage([]string{"ksm-1"}, false), nil).Once()

	ms.EXPECT().UpsertListing(mock.Anything, mock.Anything).Return(nil).Once()
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-1", "succeeded", "", 1).Return(nil).Once()

	require.NoError(t, eng.RunIngestion(context.Background()))
}

func TestRunIngestion_UpsertErrorContinues(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mp := aggMocks.NewMockProvider(t)
	eng := NewEngine(ms, mp, testHolder(),
		WithLogger(quietLogger()),
		WithLocations([]string{"nairobi"}),
		WithStaggerOffset(0),
	)

	ms.EXPECT().InsertJobRun(mock.Anything, "ingestion").Return("run-1", nil).Once()

	mp.EXPECT().
		FetchListings(mock.Anything, mock.Anything).
		Return(feedPage([]string{"a", "b"}, false), nil).Once()

	ms.EXPECT().UpsertListing(mock.Anything, mock.Anything).
		Return(errors.New("constraint violation")).Once()
	ms.EXPECT().UpsertListing(mock.Anything, mock.Anything).Return(nil).Once()

	ms.EXPECT().CompleteJobRun(mock.Anything, "run-1", "succeeded", "", 1).Return(nil).Once()

	require.NoError(t, eng.RunIngestion(context.Background()))
}

func TestRunIngestion_JobStartFailure(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mp := aggMocks.NewMockProvider(t)
	eng := NewEngine(ms, mp, testHolder(), WithLogger(quietLogger()))

	ms.EXPECT().InsertJobRun(mock.Anything, "ingestion").
		Return("", errors.New("db down")).Once()

	err := eng.RunIngestion(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recording job start")
}

func TestRunMarketRefresh_SwapsTable(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mp := aggMocks.NewMockProvider(t)
	holder := testHolder()
	eng := NewEngine(ms, mp, holder,
		WithLogger(quietLogger()),
		WithMinSampleSize(3),
	)

	ms.EXPECT().InsertJobRun(mock.Anything, "market_refresh").Return("run-2", nil).Once()
	ms.EXPECT().LocationPriceStats(mock.Anything, 90).Return([]domain.LocationStat{
		{Location: "nairobi", AvgPrice: 9_800_000, ListingCount: 12, AvgDaysOnMarket: 28},
		{Location: "kisumu", AvgPrice: 4_000_000, ListingCount: 2}, // below sample floor
		{Location: "naivasha", AvgPrice: 6_200_000, ListingCount: 5},
	}, nil).Once()
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-2", "succeeded", "", 2).Return(nil).Once()

	require.NoError(t, eng.RunMarketRefresh(context.Background()))

	table := holder.Get()

	nairobi, ok := table.Lookup("nairobi")
	require.True(t, ok)
	assert.InDelta(t, 9_800_000, nairobi.AvgPrice, 1)
	assert.InDelta(t, 11.2, nairobi.GrowthPct, 0.001, "growth classification preserved")
	assert.InDelta(t, 28, nairobi.AvgDaysOnMarket, 0.001)

	kisumu, ok := table.Lookup("kisumu")
	require.True(t, ok)
	assert.InDelta(t, 5_600_000, kisumu.AvgPrice, 1, "below sample floor keeps reference average")

	naivasha, ok := table.Lookup("naivasha")
	require.True(t, ok, "new location added from aggregates")
	assert.Equal(t, domain.ActivityModerate, naivasha.Activity)
}

func TestRunMarketRefresh_StatsFailure(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mp := aggMocks.NewMockProvider(t)
	holder := testHolder()
	before := holder.Get()
	eng := NewEngine(ms, mp, holder, WithLogger(quietLogger()))

	ms.EXPECT().InsertJobRun(mock.Anything, "market_refresh").Return("run-2", nil).Once()
	ms.EXPECT().LocationPriceStats(mock.Anything, 90).
		Return(nil, errors.New("db down")).Once()
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-2", "failed", mock.Anything, 0).
		Return(nil).Once()

	err := eng.RunMarketRefresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "computing location stats")
	assert.Same(t, before, holder.Get(), "table unchanged on failure")
}
