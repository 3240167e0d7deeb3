// Package domain defines the core business types for keja-match.
package domain

import (
	"slices"
	"strings"
	"time"
)

// PropertyType represents the category of a listed property.
type PropertyType string

// Property type constants.
const (
	PropertyApartment  PropertyType = "apartment"
	PropertyHouse      PropertyType = "house"
	PropertyTownhouse  PropertyType = "townhouse"
	PropertyCommercial PropertyType = "commercial"
)

// RiskTolerance represents a user's stated investment risk appetite.
type RiskTolerance string

// Risk tolerance constants.
const (
	RiskLow      RiskTolerance = "low"
	RiskModerate RiskTolerance = "moderate"
	RiskHigh     RiskTolerance = "high"
)

// MarketActivity classifies a location's transaction velocity.
type MarketActivity string

// Market activity constants.
const (
	ActivityHot      MarketActivity = "hot"
	ActivityModerate MarketActivity = "moderate"
	ActivitySlow     MarketActivity = "slow"
)

// MarketTrend classifies the direction of a location's prices.
type MarketTrend string

// Market trend constants.
const (
	TrendRising    MarketTrend = "rising"
	TrendStable    MarketTrend = "stable"
	TrendDeclining MarketTrend = "declining"
)

// PaymentComfort classifies how comfortably an estimated payment fits an income.
type PaymentComfort string

// Payment comfort constants.
const (
	ComfortComfortable PaymentComfort = "comfortable"
	ComfortStretch     PaymentComfort = "stretch"
	ComfortTight       PaymentComfort = "tight"
)

// IntentCategory classifies a free-text search query.
type IntentCategory string

// Intent category constants.
const (
	IntentBrowse             IntentCategory = "browse"
	IntentSpecificSearch     IntentCategory = "specific_search"
	IntentComparison         IntentCategory = "comparison"
	IntentInvestmentAnalysis IntentCategory = "investment_analysis"
	IntentFirstTimeBuyer     IntentCategory = "first_time_buyer"
)

// Urgency classifies the inferred timeline for acting on a search.
type Urgency string

// Urgency constants.
const (
	UrgencyImmediate     Urgency = "immediate"
	UrgencyWithinMonth   Urgency = "within_month"
	UrgencyWithinQuarter Urgency = "within_quarter"
	UrgencyExploring     Urgency = "exploring"
)

// ApplicationStatus tracks a rent-to-own application through admin review.
type ApplicationStatus string

// Application status constants.
const (
	ApplicationReceived  ApplicationStatus = "received"
	ApplicationReviewing ApplicationStatus = "reviewing"
	ApplicationApproved  ApplicationStatus = "approved"
	ApplicationDeclined  ApplicationStatus = "declined"
)

// Listing represents a property available for rent-to-own.
type Listing struct {
	ID        string `json:"id"                   db:"id"`
	SourceRef string `json:"source_ref,omitempty" db:"source_ref"`
	Title     string `json:"title"                db:"title"`

	Price        float64      `json:"price"         db:"price"`
	Currency     string       `json:"currency"      db:"currency"`
	Location     string       `json:"location"      db:"location"`
	PropertyType PropertyType `json:"property_type" db:"property_type"`
	Bedrooms     int          `json:"bedrooms"      db:"bedrooms"`
	Bathrooms    int          `json:"bathrooms"     db:"bathrooms"`
	AreaSqm      float64      `json:"area_sqm"      db:"area_sqm"`

	ListedAt  *time.Time `json:"listed_at,omitempty" db:"listed_at"`
	CreatedAt time.Time  `json:"created_at"          db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"          db:"updated_at"`
}

// BudgetRange is an optional min/max price window. A nil bound is unbounded
// on that side.
type BudgetRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// UserPreferences holds a user's stated search preferences and engagement
// history. The recommendation engine only reads it; mutation is owned by
// callers and the persistence layer.
type UserPreferences struct {
	UserID string `json:"user_id" db:"user_id"`

	Locations        []string       `json:"locations,omitempty"         db:"locations"`
	PropertyTypes    []PropertyType `json:"property_types,omitempty"    db:"property_types"`
	BudgetMin        *float64       `json:"budget_min,omitempty"        db:"budget_min"`
	BudgetMax        *float64       `json:"budget_max,omitempty"        db:"budget_max"`
	Bedrooms         *int           `json:"bedrooms,omitempty"          db:"bedrooms"`
	LifestyleFactors []string       `json:"lifestyle_factors,omitempty" db:"lifestyle_factors"`
	InvestmentGoals  []string       `json:"investment_goals,omitempty"  db:"investment_goals"`
	RiskTolerance    RiskTolerance  `json:"risk_tolerance,omitempty"    db:"risk_tolerance"`

	SearchHistory  []string `json:"search_history,omitempty"  db:"search_history"`
	ViewedListings []string `json:"viewed_listings,omitempty" db:"viewed_listings"`
	SavedListings  []string `json:"saved_listings,omitempty"  db:"saved_listings"`

	// Stamped by the persistence layer on write; clients need not supply it.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" required:"false"`
}

// PrefersLocation reports whether loc is in the preferred-locations set.
// Comparison is case-insensitive.
func (p *UserPreferences) PrefersLocation(loc string) bool {
	for _, l := range p.Locations {
		if strings.EqualFold(l, loc) {
			return true
		}
	}
	return false
}

// PrefersType reports whether t is in the preferred property-type set.
func (p *UserPreferences) PrefersType(t PropertyType) bool {
	return slices.Contains(p.PropertyTypes, t)
}

// HasViewed reports whether the listing was previously viewed.
func (p *UserPreferences) HasViewed(listingID string) bool {
	return slices.Contains(p.ViewedListings, listingID)
}

// HasSaved reports whether the listing was previously saved.
func (p *UserPreferences) HasSaved(listingID string) bool {
	return slices.Contains(p.SavedListings, listingID)
}

// HasLifestyleFactor reports whether the given lifestyle tag is present.
func (p *UserPreferences) HasLifestyleFactor(tag string) bool {
	return slices.Contains(p.LifestyleFactors, tag)
}

// PrimaryGoal returns the first stated investment goal, or "".
func (p *UserPreferences) PrimaryGoal() string {
	if len(p.InvestmentGoals) == 0 {
		return ""
	}
	return p.InvestmentGoals[0]
}

// ExtractedFilters are the structured fields pulled out of a free-text query.
type ExtractedFilters struct {
	Location     string       `json:"location,omitempty"`
	PropertyType PropertyType `json:"property_type,omitempty"`
	Budget       *BudgetRange `json:"budget,omitempty"`
	Bedrooms     *int         `json:"bedrooms,omitempty"`
	Features     []string     `json:"features,omitempty"`
}

// SearchIntent is the structured interpretation of a free-text query.
// Produced fresh per call, never persisted.
type SearchIntent struct {
	Query      string           `json:"query"`
	Intent     IntentCategory   `json:"intent"`
	Filters    ExtractedFilters `json:"extracted_filters"`
	Urgency    Urgency          `json:"urgency"`
	Confidence float64          `json:"confidence"`
}

// InsightImportance tiers an insight's weight in the UI.
type InsightImportance string

// Insight importance constants.
const (
	ImportanceHigh   InsightImportance = "high"
	ImportanceMedium InsightImportance = "medium"
	ImportanceLow    InsightImportance = "low"
)

// Insight is a categorized, human-readable observation about a match.
type Insight struct {
	Category   string            `json:"category"`
	Text       string            `json:"text"`
	Importance InsightImportance `json:"importance"`
}

// FinancialFit describes how a listing fits a user's finances.
type FinancialFit struct {
	AffordabilityScore  float64        `json:"affordability_score"`
	PaymentComfort      PaymentComfort `json:"payment_comfort"`
	InvestmentPotential float64        `json:"investment_potential"`
}

// MarketInsight describes a listing's position in its local market.
type MarketInsight struct {
	PriceCompetitiveness string      `json:"price_competitiveness"`
	MarketTrend          MarketTrend `json:"market_trend"`
	InvestmentOutlook    string      `json:"investment_outlook"`
}

// ScoreBreakdown details the per-factor points behind a match score.
type ScoreBreakdown struct {
	Location   float64 `json:"location"`
	Type       float64 `json:"property_type"`
	Budget     float64 `json:"budget"`
	Bedrooms   float64 `json:"bedrooms"`
	Engagement float64 `json:"engagement"`
	Total      float64 `json:"total"`
}

// Recommendation is a scored, explained match between a listing and a user.
// Produced fresh per call, never persisted.
type Recommendation struct {
	ListingID        string         `json:"listing_id"`
	UserID           string         `json:"user_id"`
	MatchScore       float64        `json:"match_score"`
	Confidence       float64        `json:"confidence"`
	Reasons          []string       `json:"reasons"`
	Insights         []Insight      `json:"insights"`
	FinancialFit     FinancialFit   `json:"financial_fit"`
	MarketInsight    MarketInsight  `json:"market_insight"`
	PersonalizedNote string         `json:"personalized_note,omitempty"`
	Breakdown        ScoreBreakdown `json:"score_breakdown"`
	GeneratedAt      time.Time      `json:"generated_at"`
}

// Application is a rent-to-own loan application awaiting admin review.
type Application struct {
	ID        string `json:"id"         db:"id"`
	UserID    string `json:"user_id"    db:"user_id"`
	ListingID string `json:"listing_id" db:"listing_id"`

	MonthlyIncome    float64 `json:"monthly_income"    db:"monthly_income"`
	DownPayment      float64 `json:"down_payment"      db:"down_payment"`
	TermMonths       int     `json:"term_months"       db:"term_months"`
	EstimatedPayment float64 `json:"estimated_payment" db:"estimated_payment"`

	Status    ApplicationStatus `json:"status"          db:"status"`
	Notes     string            `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time         `json:"created_at"      db:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"      db:"updated_at"`
}

// ValidStatusTransition reports whether an application may move between two
// review statuses. Terminal states cannot be re-opened.
func ValidStatusTransition(from, to ApplicationStatus) bool {
	switch from {
	case ApplicationReceived:
		return to == ApplicationReviewing || to == ApplicationApproved || to == ApplicationDeclined
	case ApplicationReviewing:
		return to == ApplicationApproved || to == ApplicationDeclined
	default:
		return false
	}
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// LocationStat is a per-location aggregate computed from stored listings,
// used to refresh the market table.
type LocationStat struct {
	Location        string  `json:"location"           db:"location"`
	AvgPrice        float64 `json:"avg_price"          db:"avg_price"`
	ListingCount    int     `json:"listing_count"      db:"listing_count"`
	AvgDaysOnMarket float64 `json:"avg_days_on_market" db:"avg_days_on_market"`
}
