package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kejahub/keja-match/internal/aggregator"
	"github.com/kejahub/keja-match/internal/config"
	"github.com/kejahub/keja-match/internal/engine"
	"github.com/kejahub/keja-match/internal/store"
	"github.com/kejahub/keja-match/pkg/logger"
	"github.com/kejahub/keja-match/pkg/market"
)

var seedFixtures string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load fixture listings into the database",
	Long:  "Runs a single ingestion cycle from the fixture feed followed by a market refresh, so a fresh database has listings and per-location price statistics to work with.",
	RunE: func(*cobra.Command, []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer st.Close()

		fixturesPath := seedFixtures
		if fixturesPath == "" {
			fixturesPath = cfg.Aggregator.FixturesPath
		}

		var provider aggregator.Provider
		if fixturesPath != "" {
			provider, err = aggregator.NewFixtureProviderFromFile(fixturesPath)
		} else {
			provider, err = aggregator.NewFixtureProvider()
		}
		if err != nil {
			return fmt.Errorf("loading fixtures: %w", err)
		}

		table, err := loadMarketTable(cfg)
		if err != nil {
			return err
		}

		eng := engine.NewEngine(st, provider, market.NewHolder(table),
			engine.WithLogger(log),
			engine.WithLocations(cfg.Aggregator.Locations),
			engine.WithPageSize(cfg.Aggregator.PageSize),
			engine.WithMaxCallsPerCycle(cfg.Aggregator.MaxCallsPerCycle),
			engine.WithStaggerOffset(cfg.Aggregator.StaggerOffset),
			engine.WithRefreshWindowDays(cfg.Market.RefreshWindowDays),
			engine.WithMinSampleSize(cfg.Market.MinSampleSize),
		)

		if err := eng.RunIngestion(ctx); err != nil {
			return fmt.Errorf("seeding listings: %w", err)
		}
		if err := eng.RunMarketRefresh(ctx); err != nil {
			return fmt.Errorf("refreshing market statistics: %w", err)
		}

		fmt.Println("seed complete")
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFixtures, "fixtures", "", "fixture YAML path (default: built-in fixtures)")
	rootCmd.AddCommand(seedCmd)
}

// loadMarketTable returns the configured market table override, or the
// built-in reference table when none is set.
func loadMarketTable(cfg *config.Config) (*market.Table, error) {
	if cfg.Market.TablePath == "" {
		return market.Default(), nil
	}
	table, err := market.Load(cfg.Market.TablePath)
	if err != nil {
		return nil, fmt.Errorf("loading market table: %w", err)
	}
	return table, nil
}
