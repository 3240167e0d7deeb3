// Package market provides the read-only market-data table consumed by the
// recommendation engine: per-location average prices, growth rates, and
// activity tiers. A Table is immutable after construction; refresh jobs
// build a new Table and swap the snapshot rather than mutating in place.
package market

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	domain "github.com/kejahub/keja-match/pkg/types"
)

// Stats holds the market reference data for one location.
type Stats struct {
	AvgPrice        float64               `yaml:"avg_price"          json:"avg_price"`
	GrowthPct       float64               `yaml:"growth_pct"         json:"growth_pct"`
	Activity        domain.MarketActivity `yaml:"activity"           json:"activity"`
	AvgDaysOnMarket float64               `yaml:"avg_days_on_market" json:"avg_days_on_market"`
}

// Table is an immutable location → Stats lookup. Keys are lower-cased
// location names. Safe for unlimited concurrent readers.
type Table struct {
	stats map[string]Stats
	order []string
}

// NewTable builds a Table from the given stats map. Keys are lower-cased;
// insertion order of the order slice drives Locations().
func NewTable(stats map[string]Stats) *Table {
	t := &Table{stats: make(map[string]Stats, len(stats))}
	for loc, s := range stats {
		key := strings.ToLower(strings.TrimSpace(loc))
		if key == "" {
			continue
		}
		if _, dup := t.stats[key]; !dup {
			t.order = append(t.order, key)
		}
		t.stats[key] = s
	}
	// Map iteration order is random; keep location order deterministic.
	slices.Sort(t.order)
	return t
}

// Lookup returns the stats for a location, matching case-insensitively.
// The second return is false for unknown locations; callers must degrade
// to neutral behavior rather than fail.
func (t *Table) Lookup(location string) (Stats, bool) {
	s, ok := t.stats[strings.ToLower(strings.TrimSpace(location))]
	return s, ok
}

// Locations returns the known location keys in deterministic order. The
// intent analyzer scans these in order, so order is part of behavior.
func (t *Table) Locations() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of known locations.
func (t *Table) Len() int {
	return len(t.stats)
}

// WithStats derives a new Table that overlays fresh price/days aggregates on
// the existing growth and activity classifications. Locations absent from
// the base table are added with neutral growth and moderate activity.
func (t *Table) WithStats(stats []domain.LocationStat) *Table {
	merged := make(map[string]Stats, len(t.stats)+len(stats))
	for loc, s := range t.stats {
		merged[loc] = s
	}
	for _, st := range stats {
		key := strings.ToLower(strings.TrimSpace(st.Location))
		if key == "" || st.ListingCount == 0 {
			continue
		}
		base, ok := merged[key]
		if !ok {
			base = Stats{Activity: domain.ActivityModerate}
		}
		base.AvgPrice = st.AvgPrice
		if st.AvgDaysOnMarket > 0 {
			base.AvgDaysOnMarket = st.AvgDaysOnMarket
		}
		merged[key] = base
	}
	return NewTable(merged)
}

// Load reads a market table from a YAML file keyed by location name.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading market data file: %w", err)
	}

	stats := map[string]Stats{}
	if err := yaml.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("parsing market data YAML: %w", err)
	}
	if len(stats) == 0 {
		return nil, fmt.Errorf("market data file %s contains no locations", path)
	}

	return NewTable(stats), nil
}

// Default returns the built-in table covering the major Kenyan markets.
func Default() *Table {
	return NewTable(map[string]Stats{
		"nairobi":  {AvgPrice: 12_500_000, GrowthPct: 11.2, Activity: domain.ActivityHot, AvgDaysOnMarket: 34},
		"mombasa":  {AvgPrice: 8_200_000, GrowthPct: 7.4, Activity: domain.ActivityModerate, AvgDaysOnMarket: 52},
		"kisumu":   {AvgPrice: 5_600_000, GrowthPct: 9.1, Activity: domain.ActivityHot, AvgDaysOnMarket: 41},
		"nakuru":   {AvgPrice: 4_900_000, GrowthPct: 12.8, Activity: domain.ActivityHot, AvgDaysOnMarket: 38},
		"eldoret":  {AvgPrice: 4_100_000, GrowthPct: 6.3, Activity: domain.ActivityModerate, AvgDaysOnMarket: 60},
		"thika":    {AvgPrice: 5_300_000, GrowthPct: 8.7, Activity: domain.ActivityModerate, AvgDaysOnMarket: 47},
		"ruiru":    {AvgPrice: 4_700_000, GrowthPct: 10.5, Activity: domain.ActivityHot, AvgDaysOnMarket: 43},
		"machakos": {AvgPrice: 3_800_000, GrowthPct: 4.2, Activity: domain.ActivitySlow, AvgDaysOnMarket: 75},
	})
}

// Holder is an atomic Table snapshot shared between the HTTP layer and the
// refresh job. Readers always see a complete, immutable Table.
type Holder struct {
	table atomic.Pointer[Table]
}

// NewHolder creates a Holder seeded with the given table.
func NewHolder(t *Table) *Holder {
	h := &Holder{}
	h.table.Store(t)
	return h
}

// Get returns the current snapshot.
func (h *Holder) Get() *Table {
	return h.table.Load()
}

// Swap replaces the snapshot.
func (h *Holder) Swap(t *Table) {
	h.table.Store(t)
}
