package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/kejahub/keja-match/pkg/types"
)

func recommendCmd() *cobra.Command {
	var (
		userID    string
		income    float64
		limit     int
		locations []string
		types     []string
		budgetMin float64
		budgetMax float64
		bedrooms  int
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Generate ranked listing recommendations",
		Long: "Generate scored and explained listing recommendations for a user.\n" +
			"By default the user's stored preferences are used; filter flags\n" +
			"build an ad-hoc preference set instead.",
		Example: `  # Recommend from stored preferences
  kejactl recommend --user user-42 --income 250000

  # Ad-hoc preferences without storing anything
  kejactl recommend --user user-42 --income 250000 \
    --location nairobi --type apartment --budget-max 10000000 --bedrooms 3`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			ctx := context.Background()

			prefs, err := buildPrefs(ctx, c, userID, locations, types, budgetMin, budgetMax, bedrooms)
			if err != nil {
				return err
			}

			resp, err := c.GenerateRecommendations(ctx, prefs, income, limit)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Recommendations) == 0 {
				fmt.Println("No matches found.")
				return nil
			}

			fmt.Printf("Top %d of %d candidates\n\n", len(resp.Recommendations), resp.CandidateCount)
			return printRecommendationsTable(resp.Recommendations)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user ID")
	cmd.Flags().Float64Var(&income, "income", 0, "monthly income in KES for affordability scoring")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of recommendations (default: server setting)")
	cmd.Flags().StringSliceVar(&locations, "location", nil, "preferred locations")
	cmd.Flags().StringSliceVar(&types, "type", nil, "preferred property types")
	cmd.Flags().Float64Var(&budgetMin, "budget-min", 0, "budget lower bound in KES")
	cmd.Flags().Float64Var(&budgetMax, "budget-max", 0, "budget upper bound in KES")
	cmd.Flags().IntVar(&bedrooms, "bedrooms", 0, "desired bedroom count")
	cobra.CheckErr(cmd.MarkFlagRequired("user"))

	return cmd
}

// buildPrefs returns ad-hoc preferences when any filter flag is set, and the
// user's stored preferences otherwise.
func buildPrefs(
	ctx context.Context,
	c prefsGetter,
	userID string,
	locations, types []string,
	budgetMin, budgetMax float64,
	bedrooms int,
) (*domain.UserPreferences, error) {
	adHoc := len(locations) > 0 || len(types) > 0 ||
		budgetMin > 0 || budgetMax > 0 || bedrooms > 0
	if !adHoc {
		prefs, err := c.GetPreferences(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("fetching stored preferences (use filter flags for ad-hoc ones): %w", err)
		}
		return prefs, nil
	}

	prefs := &domain.UserPreferences{UserID: userID, Locations: locations}
	for _, t := range types {
		prefs.PropertyTypes = append(prefs.PropertyTypes, domain.PropertyType(t))
	}
	if budgetMin > 0 {
		prefs.BudgetMin = &budgetMin
	}
	if budgetMax > 0 {
		prefs.BudgetMax = &budgetMax
	}
	if bedrooms > 0 {
		prefs.Bedrooms = &bedrooms
	}
	return prefs, nil
}

type prefsGetter interface {
	GetPreferences(ctx context.Context, userID string) (*domain.UserPreferences, error)
}
