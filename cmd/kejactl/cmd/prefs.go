package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/kejahub/keja-match/pkg/types"
)

func prefsCmd() *cobra.Command {
	prefsRoot := &cobra.Command{
		Use:   "prefs",
		Short: "Manage user preferences",
		Long: "Inspect and update a user's stored search preferences and\n" +
			"engagement history.",
	}

	prefsRoot.AddCommand(
		prefsGetCmd(),
		prefsSetCmd(),
		prefsViewCmd(),
		prefsSaveCmd(),
	)

	return prefsRoot
}

func prefsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <user>",
		Short:   "Show stored preferences",
		Example: `  kejactl prefs get user-42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			prefs, err := c.GetPreferences(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(prefs)
			}

			return printPreferences(prefs)
		},
	}
}

func prefsSetCmd() *cobra.Command {
	var (
		locations []string
		types     []string
		budgetMin float64
		budgetMax float64
		bedrooms  int
		lifestyle []string
		goals     []string
		risk      string
	)

	cmd := &cobra.Command{
		Use:   "set <user>",
		Short: "Replace stored preferences",
		Example: `  kejactl prefs set user-42 --location nairobi,kiambu --type apartment \
    --budget-max 10000000 --bedrooms 3 --lifestyle parking,security \
    --goals appreciation --risk moderate`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			prefs := &domain.UserPreferences{
				UserID:           args[0],
				Locations:        locations,
				LifestyleFactors: lifestyle,
				InvestmentGoals:  goals,
				RiskTolerance:    domain.RiskTolerance(risk),
			}
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

			c := newClient()
			stored, err := c.PutPreferences(context.Background(), args[0], prefs)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(stored)
			}

			return printPreferences(stored)
		},
	}
	cmd.Flags().StringSliceVar(&locations, "location", nil, "preferred locations")
	cmd.Flags().StringSliceVar(&types, "type", nil, "preferred property types")
	cmd.Flags().Float64Var(&budgetMin, "budget-min", 0, "budget lower bound in KES")
	cmd.Flags().Float64Var(&budgetMax, "budget-max", 0, "budget upper bound in KES")
	cmd.Flags().IntVar(&bedrooms, "bedrooms", 0, "desired bedroom count")
	cmd.Flags().StringSliceVar(&lifestyle, "lifestyle", nil, "lifestyle factors (parking, security, garden, ...)")
	cmd.Flags().StringSliceVar(&goals, "goals", nil, "investment goals")
	cmd.Flags().StringVar(&risk, "risk", "", "risk tolerance (conservative, moderate, aggressive)")

	return cmd
}

func prefsViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "view <user> <listing>",
		Short:   "Record a listing view",
		Example: `  kejactl prefs view user-42 7f3c2a10-...`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.MarkViewed(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("Recorded view.")
			return nil
		},
	}
}

func prefsSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "save <user> <listing>",
		Short:   "Record a saved listing",
		Example: `  kejactl prefs save user-42 7f3c2a10-...`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.MarkSaved(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("Saved listing.")
			return nil
		},
	}
}
