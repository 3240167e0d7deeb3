package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/kejahub/keja-match/pkg/finance"
	domain "github.com/kejahub/keja-match/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printListingsTable(listings []domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTITLE\tPRICE\tLOCATION\tTYPE\tBEDS\n")
	for i := range listings {
		tw.writef("%s\t%s\t%s\t%s\t%s\t%d\n",
			listings[i].ID,
			truncate(listings[i].Title, 40),
			finance.FormatKES(listings[i].Price),
			listings[i].Location,
			listings[i].PropertyType,
			listings[i].Bedrooms,
		)
	}
	return tw.finish()
}

func printListingDetail(l *domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Source ref:\t%s\n", l.SourceRef)
	tw.writef("Title:\t%s\n", l.Title)
	tw.writef("Price:\t%s\n", finance.FormatKES(l.Price))
	tw.writef("Location:\t%s\n", l.Location)
	tw.writef("Type:\t%s\n", l.PropertyType)
	tw.writef("Bedrooms:\t%d\n", l.Bedrooms)
	tw.writef("Bathrooms:\t%d\n", l.Bathrooms)
	tw.writef("Area:\t%.0f sqm\n", l.AreaSqm)
	if l.ListedAt != nil {
		tw.writef("Listed:\t%s\n", l.ListedAt.Format("2006-01-02"))
	}
	return tw.finish()
}

func printRecommendationsTable(recs []domain.Recommendation) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("LISTING\tSCORE\tCONFIDENCE\tCOMFORT\tTOP REASON\n")
	for i := range recs {
		reason := "-"
		if len(recs[i].Reasons) > 0 {
			reason = truncate(recs[i].Reasons[0], 50)
		}
		tw.writef("%s\t%.0f\t%.2f\t%s\t%s\n",
			recs[i].ListingID,
			recs[i].MatchScore,
			recs[i].Confidence,
			recs[i].FinancialFit.PaymentComfort,
			reason,
		)
	}
	return tw.finish()
}

func printIntent(si *domain.SearchIntent) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Intent:\t%s\n", si.Intent)
	tw.writef("Urgency:\t%s\n", si.Urgency)
	tw.writef("Confidence:\t%.2f\n", si.Confidence)
	if si.Filters.Location != "" {
		tw.writef("Location:\t%s\n", si.Filters.Location)
	}
	if si.Filters.PropertyType != "" {
		tw.writef("Type:\t%s\n", si.Filters.PropertyType)
	}
	if si.Filters.Bedrooms != nil {
		tw.writef("Bedrooms:\t%d\n", *si.Filters.Bedrooms)
	}
	if b := si.Filters.Budget; b != nil {
		switch {
		case b.Min != nil && b.Max != nil:
			tw.writef("Budget:\t%s - %s\n", finance.FormatKES(*b.Min), finance.FormatKES(*b.Max))
		case b.Max != nil:
			tw.writef("Budget:\tup to %s\n", finance.FormatKES(*b.Max))
		case b.Min != nil:
			tw.writef("Budget:\tfrom %s\n", finance.FormatKES(*b.Min))
		}
	}
	if len(si.Filters.Features) > 0 {
		tw.writef("Features:\t%s\n", strings.Join(si.Filters.Features, ", "))
	}
	return tw.finish()
}

func printPreferences(p *domain.UserPreferences) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("User:\t%s\n", p.UserID)
	tw.writef("Locations:\t%s\n", strings.Join(p.Locations, ", "))
	tw.writef("Types:\t%s\n", joinTypes(p.PropertyTypes))
	switch {
	case p.BudgetMin != nil && p.BudgetMax != nil:
		tw.writef("Budget:\t%s - %s\n", finance.FormatKES(*p.BudgetMin), finance.FormatKES(*p.BudgetMax))
	case p.BudgetMax != nil:
		tw.writef("Budget:\tup to %s\n", finance.FormatKES(*p.BudgetMax))
	case p.BudgetMin != nil:
		tw.writef("Budget:\tfrom %s\n", finance.FormatKES(*p.BudgetMin))
	}
	if p.Bedrooms != nil {
		tw.writef("Bedrooms:\t%d\n", *p.Bedrooms)
	}
	if len(p.LifestyleFactors) > 0 {
		tw.writef("Lifestyle:\t%s\n", strings.Join(p.LifestyleFactors, ", "))
	}
	if len(p.InvestmentGoals) > 0 {
		tw.writef("Goals:\t%s\n", strings.Join(p.InvestmentGoals, ", "))
	}
	if p.RiskTolerance != "" {
		tw.writef("Risk:\t%s\n", p.RiskTolerance)
	}
	tw.writef("Viewed:\t%d\n", len(p.ViewedListings))
	tw.writef("Saved:\t%d\n", len(p.SavedListings))
	return tw.finish()
}

func printApplicationsTable(apps []domain.Application) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tUSER\tLISTING\tINCOME\tPAYMENT\tSTATUS\tCREATED\n")
	for i := range apps {
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			apps[i].ID,
			apps[i].UserID,
			apps[i].ListingID,
			finance.FormatKES(apps[i].MonthlyIncome),
			finance.FormatKES(apps[i].EstimatedPayment),
			apps[i].Status,
			apps[i].CreatedAt.Format("2006-01-02"),
		)
	}
	return tw.finish()
}

func printApplicationDetail(a *domain.Application) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", a.ID)
	tw.writef("User:\t%s\n", a.UserID)
	tw.writef("Listing:\t%s\n", a.ListingID)
	tw.writef("Income:\t%s/mo\n", finance.FormatKES(a.MonthlyIncome))
	tw.writef("Down payment:\t%s\n", finance.FormatKES(a.DownPayment))
	tw.writef("Term:\t%d months\n", a.TermMonths)
	tw.writef("Est. payment:\t%s/mo\n", finance.FormatKES(a.EstimatedPayment))
	tw.writef("Status:\t%s\n", a.Status)
	if a.Notes != "" {
		tw.writef("Notes:\t%s\n", a.Notes)
	}
	tw.writef("Created:\t%s\n", a.CreatedAt.Format("2006-01-02 15:04"))
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tJOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		completed := "-"
		if runs[i].CompletedAt != nil {
			completed = runs[i].CompletedAt.Format("2006-01-02 15:04:05")
		}
		rows := "-"
		if runs[i].RowsAffected != nil {
			rows = fmt.Sprintf("%d", *runs[i].RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			runs[i].ID,
			runs[i].JobName,
			runs[i].Status,
			runs[i].StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			rows,
			truncate(runs[i].ErrorText, 30),
		)
	}
	return tw.finish()
}

func joinTypes(types []domain.PropertyType) string {
	s := make([]string, len(types))
	for i, t := range types {
		s[i] = string(t)
	}
	return strings.Join(s, ", ")
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
