// Package recommend implements the listing recommendation engine: match
// scoring, financial-fit assessment, market insights, and the human-readable
// explanations attached to each result. The engine is a pure function over
// its inputs and an injected read-only market table.
package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/kejahub/keja-match/pkg/finance"
	"github.com/kejahub/keja-match/pkg/market"
	domain "github.com/kejahub/keja-match/pkg/types"
)

// Weights defines the maximum points each match factor contributes.
type Weights struct {
	Location   float64
	Type       float64
	Budget     float64
	Bedrooms   float64
	Engagement float64
}

// DefaultWeights returns the standard factor weights (total 100).
func DefaultWeights() Weights {
	return Weights{
		Location:   25,
		Type:       20,
		Budget:     30,
		Bedrooms:   15,
		Engagement: 10,
	}
}

// Neutral partial credit awarded when the user expressed no preference for
// a factor.
const (
	neutralLocation = 15.0
	neutralType     = 12.0
	neutralBudget   = 20.0
	neutralBedrooms = 10.0
)

// Engagement sub-bonuses. Both apply independently; a viewed and saved
// listing earns the full 15.
const (
	viewedBonus = 5.0
	savedBonus  = 10.0
)

// Bedroom mismatch penalty per room of difference.
const bedroomPenaltyPerRoom = 5.0

// Affordability thresholds on the payment-to-income ratio.
const (
	ratioComfortable = 0.25
	ratioModerate    = 0.35
	ratioStretch     = 0.45
)

const maxReasons = 5

// Engine scores and explains listings against user preferences.
type Engine struct {
	table   *market.Table
	weights Weights
	nowFunc func() time.Time
}

// Option configures the Engine.
type Option func(*Engine)

// WithWeights overrides the default factor weights.
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		e.weights = w
	}
}

// WithNowFunc overrides the clock used for GeneratedAt timestamps.
func WithNowFunc(f func() time.Time) Option {
	return func(e *Engine) {
		e.nowFunc = f
	}
}

// New creates an Engine over the given market table.
func New(table *market.Table, opts ...Option) *Engine {
	e := &Engine{
		table:   table,
		weights: DefaultWeights(),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend produces one scored Recommendation per listing, sorted by match
// score descending (ties keep input order). monthlyIncome <= 0 means the
// income was not supplied and financial fit falls back to defaults. An empty
// listings slice yields an empty result; the call never fails.
func (e *Engine) Recommend(
	listings []domain.Listing,
	prefs *domain.UserPreferences,
	monthlyIncome float64,
) []domain.Recommendation {
	now := e.nowFunc()

	recs := make([]domain.Recommendation, 0, len(listings))
	for i := range listings {
		recs = append(recs, e.recommendOne(&listings[i], prefs, monthlyIncome, now))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})

	return recs
}

func (e *Engine) recommendOne(
	l *domain.Listing,
	prefs *domain.UserPreferences,
	monthlyIncome float64,
	now time.Time,
) domain.Recommendation {
	breakdown := e.scoreMatch(l, prefs)
	stats, known := e.table.Lookup(l.Location)
	fit := e.financialFit(l, monthlyIncome, stats, known)

	return domain.Recommendation{
		ListingID:        l.ID,
		UserID:           prefs.UserID,
		MatchScore:       breakdown.Total,
		Confidence:       confidence(prefs, breakdown.Total),
		Reasons:          e.reasons(l, prefs, breakdown.Total, stats, known),
		Insights:         e.insights(l, prefs, fit, stats, known),
		FinancialFit:     fit,
		MarketInsight:    e.marketInsight(l, stats, known),
		PersonalizedNote: personalizedNote(l, prefs, stats, known),
		Breakdown:        breakdown,
		GeneratedAt:      now,
	}
}

// scoreMatch computes the weighted five-factor match score, clamped to
// [0, 100].
func (e *Engine) scoreMatch(l *domain.Listing, prefs *domain.UserPreferences) domain.ScoreBreakdown {
	b := domain.ScoreBreakdown{
		Location:   e.locationScore(l, prefs),
		Type:       e.typeScore(l, prefs),
		Budget:     e.budgetScore(l, prefs),
		Bedrooms:   e.bedroomScore(l, prefs),
		Engagement: engagementScore(l, prefs),
	}
	b.Total = clamp(b.Location+b.Type+b.Budget+b.Bedrooms+b.Engagement, 0, 100)
	return b
}

func (e *Engine) locationScore(l *domain.Listing, prefs *domain.UserPreferences) float64 {
	if len(prefs.Locations) == 0 {
		return neutralLocation
	}
	if prefs.PrefersLocation(l.Location) {
		return e.weights.Location
	}
	return 0
}

func (e *Engine) typeScore(l *domain.Listing, prefs *domain.UserPreferences) float64 {
	if len(prefs.PropertyTypes) == 0 {
		return neutralType
	}
	if prefs.PrefersType(l.PropertyType) {
		return e.weights.Type
	}
	return 0
}

// budgetScore awards full credit inside the stated window and a midpoint
// distance penalty outside it. With no budget stated at all the factor is
// neutral.
func (e *Engine) budgetScore(l *domain.Listing, prefs *domain.UserPreferences) float64 {
	if prefs.BudgetMin == nil && prefs.BudgetMax == nil {
		return neutralBudget
	}

	if withinBudget(l.Price, prefs.BudgetMin, prefs.BudgetMax) {
		return e.weights.Budget
	}

	// Outside the window: penalize by relative distance from the midpoint.
	// Missing bounds default to 0 (min) and the listing price (max).
	lo := 0.0
	if prefs.BudgetMin != nil {
		lo = *prefs.BudgetMin
	}
	hi := l.Price
	if prefs.BudgetMax != nil {
		hi = *prefs.BudgetMax
	}
	mid := (lo + hi) / 2
	if mid <= 0 {
		return 0
	}

	w := e.weights.Budget
	return math.Max(0, w-w*math.Abs(l.Price-mid)/mid)
}

func withinBudget(price float64, min, max *float64) bool {
	if min != nil && price < *min {
		return false
	}
	if max != nil && price > *max {
		return false
	}
	return true
}

func (e *Engine) bedroomScore(l *domain.Listing, prefs *domain.UserPreferences) float64 {
	if prefs.Bedrooms == nil {
		return neutralBedrooms
	}
	diff := math.Abs(float64(l.Bedrooms - *prefs.Bedrooms))
	return math.Max(0, e.weights.Bedrooms-bedroomPenaltyPerRoom*diff)
}

// engagementScore applies two independent additive bonuses; a listing both
// viewed and saved earns both.
func engagementScore(l *domain.Listing, prefs *domain.UserPreferences) float64 {
	var score float64
	if prefs.HasViewed(l.ID) {
		score += viewedBonus
	}
	if prefs.HasSaved(l.ID) {
		score += savedBonus
	}
	return score
}

// financialFit assesses the reference-loan payment against the income.
// Without an income it returns the documented fixed defaults.
func (e *Engine) financialFit(
	l *domain.Listing,
	monthlyIncome float64,
	stats market.Stats,
	known bool,
) domain.FinancialFit {
	potential := 60.0
	if known {
		potential = math.Min(100, 50+3*stats.GrowthPct)
	}

	if monthlyIncome <= 0 {
		return domain.FinancialFit{
			AffordabilityScore:  50,
			PaymentComfort:      domain.ComfortStretch,
			InvestmentPotential: potential,
		}
	}

	payment := finance.Quote(l.Price).MonthlyPayment
	ratio := payment / monthlyIncome

	var score float64
	var comfort domain.PaymentComfort
	switch {
	case ratio <= ratioComfortable:
		score, comfort = 90, domain.ComfortComfortable
	case ratio <= ratioModerate:
		score, comfort = 70, domain.ComfortComfortable
	case ratio <= ratioStretch:
		score, comfort = 50, domain.ComfortStretch
	default:
		score, comfort = 30, domain.ComfortTight
	}

	return domain.FinancialFit{
		AffordabilityScore:  score,
		PaymentComfort:      comfort,
		InvestmentPotential: potential,
	}
}

func (e *Engine) marketInsight(l *domain.Listing, stats market.Stats, known bool) domain.MarketInsight {
	if !known {
		return domain.MarketInsight{
			PriceCompetitiveness: "Market data not available",
			MarketTrend:          domain.TrendStable,
			InvestmentOutlook:    "Standard investment potential",
		}
	}

	return domain.MarketInsight{
		PriceCompetitiveness: priceCompetitiveness(l.Price, stats.AvgPrice),
		MarketTrend:          marketTrend(stats.GrowthPct),
		InvestmentOutlook:    investmentOutlook(stats),
	}
}

func priceCompetitiveness(price, avg float64) string {
	if avg <= 0 {
		return "Market data not available"
	}
	diffPct := (price - avg) / avg * 100
	switch {
	case diffPct < -10:
		return "Excellent value - priced well below market average"
	case diffPct < 0:
		return "Good value - priced below market average"
	case diffPct < 10:
		return "Market rate - priced in line with the area"
	default:
		return "Premium pricing - priced above market average"
	}
}

func marketTrend(growthPct float64) domain.MarketTrend {
	switch {
	case growthPct > 8:
		return domain.TrendRising
	case growthPct > 3:
		return domain.TrendStable
	default:
		return domain.TrendDeclining
	}
}

func investmentOutlook(stats market.Stats) string {
	switch {
	case stats.GrowthPct > 10 && stats.Activity == domain.ActivityHot:
		return "Excellent growth prospects in a high-demand market"
	case stats.GrowthPct > 8:
		return "Good appreciation potential"
	case stats.GrowthPct > 5:
		return "Moderate steady growth expected"
	default:
		return "Conservative outlook with stable fundamentals"
	}
}

// reasons emits the explanation strings in fixed precedence order, capped
// at maxReasons.
func (e *Engine) reasons(
	l *domain.Listing,
	prefs *domain.UserPreferences,
	score float64,
	stats market.Stats,
	known bool,
) []string {
	var out []string

	if prefs.PrefersLocation(l.Location) {
		out = append(out, fmt.Sprintf("Located in %s, one of your preferred areas", l.Location))
	}
	if prefs.PrefersType(l.PropertyType) {
		out = append(out, fmt.Sprintf("Matches your preferred property type (%s)", l.PropertyType))
	}
	if prefs.BudgetMax != nil && withinBudget(l.Price, prefs.BudgetMin, prefs.BudgetMax) {
		out = append(out, "Within your stated budget")
	}
	if prefs.Bedrooms != nil && l.Bedrooms == *prefs.Bedrooms {
		out = append(out, fmt.Sprintf("Has exactly %d bedrooms as requested", l.Bedrooms))
	}
	switch {
	case score > 80:
		out = append(out, "Exceptional overall match for your criteria")
	case score > 60:
		out = append(out, "Good overall match for your criteria")
	}
	if known && stats.GrowthPct > 10 {
		out = append(out, fmt.Sprintf("Located in a high-growth market (%.1f%% yearly)", stats.GrowthPct))
	}
	if prefs.HasViewed(l.ID) {
		out = append(out, "You viewed this property before")
	}

	if len(out) > maxReasons {
		out = out[:maxReasons]
	}
	return out
}

func (e *Engine) insights(
	l *domain.Listing,
	prefs *domain.UserPreferences,
	fit domain.FinancialFit,
	stats market.Stats,
	known bool,
) []domain.Insight {
	var out []domain.Insight

	switch fit.PaymentComfort {
	case domain.ComfortComfortable:
		out = append(out, domain.Insight{
			Category:   "financial",
			Text:       "Monthly payments fit comfortably within your income",
			Importance: domain.ImportanceHigh,
		})
	case domain.ComfortStretch:
		out = append(out, domain.Insight{
			Category:   "financial",
			Text:       "Monthly payments would stretch your budget",
			Importance: domain.ImportanceMedium,
		})
	}

	if fit.InvestmentPotential > 80 {
		out = append(out, domain.Insight{
			Category:   "investment",
			Text:       "Strong investment potential based on local price growth",
			Importance: domain.ImportanceHigh,
		})
	}

	if prefs.HasLifestyleFactor("family-friendly") && l.Bedrooms >= 3 {
		out = append(out, domain.Insight{
			Category:   "lifestyle",
			Text:       "Spacious enough for family living",
			Importance: domain.ImportanceMedium,
		})
	}

	if known && stats.Activity == domain.ActivityHot {
		out = append(out, domain.Insight{
			Category:   "market",
			Text:       "High-demand market - well-priced properties move quickly",
			Importance: domain.ImportanceHigh,
		})
	}

	return out
}

// personalizedNote builds the one-sentence summary from the user's primary
// investment goal and the local market posture.
func personalizedNote(
	l *domain.Listing,
	prefs *domain.UserPreferences,
	stats market.Stats,
	known bool,
) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This %s in %s", l.PropertyType, l.Location)

	switch prefs.PrimaryGoal() {
	case "first-home":
		b.WriteString(" could be an excellent first home choice")
	case "investment":
		b.WriteString(" offers strong investment potential")
	default:
		b.WriteString(" aligns well with your search criteria")
	}

	switch {
	case known && stats.GrowthPct > 10:
		b.WriteString(", in an area with strong price growth.")
	case known && stats.Activity == domain.ActivityHot:
		b.WriteString(", in a market with high buyer demand.")
	default:
		b.WriteString(", in a stable market.")
	}

	return b.String()
}

// confidence starts at 0.5, adds up to 0.3 for preference completeness and
// up to 0.2 for match strength.
func confidence(prefs *domain.UserPreferences, score float64) float64 {
	defined := 0
	if len(prefs.Locations) > 0 {
		defined++
	}
	if len(prefs.PropertyTypes) > 0 {
		defined++
	}
	if prefs.BudgetMax != nil {
		defined++
	}
	if prefs.Bedrooms != nil {
		defined++
	}
	if len(prefs.LifestyleFactors) > 0 {
		defined++
	}

	c := 0.5 + 0.3*float64(defined)/5 + 0.2*score/100
	return clamp(c, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
