// Package intent implements the rule-based search-intent analyzer: it parses
// a free-text property query into a structured SearchIntent. Analysis is
// deterministic, total over arbitrary input, and makes no external calls.
package intent

import (
	"regexp"
	"strconv"
	"strings"

	domain "github.com/kejahub/keja-match/pkg/types"
)

// Analysis always reports this confidence. Extraction richness does not vary
// it; see the decision record in DESIGN.md before changing.
const fixedConfidence = 0.8

// Queries longer than this (after normalization) classify as specific_search
// when no keyword rule fires.
const specificSearchMinLen = 20

var (
	// A numeric token with an optional million/m/k scale suffix.
	budgetRe = regexp.MustCompile(`(\d+(?:\.\d+)?)(?:\s*(million|m|k)\b)?`)

	// A number immediately followed by a bedroom marker.
	bedroomRe = regexp.MustCompile(`(\d+)\s*(?:bed|br)`)
)

// Bare numbers below this threshold are read as millions shorthand
// ("under 8" meaning 8,000,000).
const bareMillionsThreshold = 100

// propertyTypeOrder is the extraction priority; first substring match wins.
var propertyTypeOrder = []domain.PropertyType{
	domain.PropertyApartment,
	domain.PropertyHouse,
	domain.PropertyTownhouse,
	domain.PropertyCommercial,
}

// featureRule maps query keywords to a feature tag. Rules are not mutually
// exclusive; every matching tag is included.
type featureRule struct {
	tag      string
	keywords []string
}

var featureRules = []featureRule{
	{"parking", []string{"parking", "garage"}},
	{"garden", []string{"garden", "yard"}},
	{"security", []string{"security", "gated"}},
	{"modern", []string{"modern", "contemporary"}},
	{"furnished", []string{"furnished", "equipped"}},
	{"pool", []string{"pool", "swimming"}},
	{"gym", []string{"gym", "fitness"}},
	{"shopping", []string{"shopping", "mall", "market"}},
}

// Analyzer parses free-text queries against a fixed, ordered location list.
type Analyzer struct {
	locations []string
}

// New creates an Analyzer that recognizes the given location names, scanned
// in order with first match winning. Names are matched lower-cased.
func New(locations []string) *Analyzer {
	locs := make([]string, 0, len(locations))
	for _, l := range locations {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" {
			locs = append(locs, l)
		}
	}
	return &Analyzer{locations: locs}
}

// Analyze parses query into a SearchIntent. It never fails: empty or
// malformed input degrades to the browse/exploring defaults.
func (a *Analyzer) Analyze(query string) domain.SearchIntent {
	normalized := strings.ToLower(strings.TrimSpace(query))

	return domain.SearchIntent{
		Query:  query,
		Intent: classifyIntent(normalized),
		Filters: domain.ExtractedFilters{
			Location:     a.extractLocation(normalized),
			PropertyType: extractPropertyType(normalized),
			Budget:       extractBudget(normalized),
			Bedrooms:     extractBedrooms(normalized),
			Features:     extractFeatures(normalized),
		},
		Urgency:    classifyUrgency(normalized),
		Confidence: fixedConfidence,
	}
}

// classifyIntent applies the first-match-wins intent rules.
func classifyIntent(q string) domain.IntentCategory {
	switch {
	case containsAny(q, "compare", "vs"):
		return domain.IntentComparison
	case containsAny(q, "investment", "roi"):
		return domain.IntentInvestmentAnalysis
	case containsAny(q, "first time", "beginner"):
		return domain.IntentFirstTimeBuyer
	case len(q) > specificSearchMinLen:
		return domain.IntentSpecificSearch
	default:
		return domain.IntentBrowse
	}
}

func classifyUrgency(q string) domain.Urgency {
	switch {
	case containsAny(q, "urgent", "asap"):
		return domain.UrgencyImmediate
	case containsAny(q, "soon", "month"):
		return domain.UrgencyWithinMonth
	case containsAny(q, "quarter", "3 months"):
		return domain.UrgencyWithinQuarter
	default:
		return domain.UrgencyExploring
	}
}

func (a *Analyzer) extractLocation(q string) string {
	for _, loc := range a.locations {
		if strings.Contains(q, loc) {
			return loc
		}
	}
	return ""
}

func extractPropertyType(q string) domain.PropertyType {
	for _, t := range propertyTypeOrder {
		if strings.Contains(q, string(t)) {
			return t
		}
	}
	return ""
}

// extractBudget pulls every numeric token out of the query and scales it by
// its suffix (million/m → 1e6, k → 1e3). A bare number under 100 is read as
// millions shorthand. One value sets an upper bound only; two or more set
// {min, max} from the extremes of the matched values.
func extractBudget(q string) *domain.BudgetRange {
	matches := budgetRe.FindAllStringSubmatch(q, -1)
	if len(matches) == 0 {
		return nil
	}

	var values []float64
	for _, m := range matches {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		switch m[2] {
		case "million", "m":
			n *= 1_000_000
		case "k":
			n *= 1_000
		default:
			if n < bareMillionsThreshold {
				n *= 1_000_000
			}
		}
		values = append(values, n)
	}
	if len(values) == 0 {
		return nil
	}

	if len(values) == 1 {
		return &domain.BudgetRange{Max: &values[0]}
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return &domain.BudgetRange{Min: &lo, Max: &hi}
}

func extractBedrooms(q string) *int {
	m := bedroomRe.FindStringSubmatch(q)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

func extractFeatures(q string) []string {
	var tags []string
	for _, rule := range featureRules {
		if containsAny(q, rule.keywords...) {
			tags = append(tags, rule.tag)
		}
	}
	return tags
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
