package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func intentCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "intent <query>",
		Short: "Analyze a free-text search query",
		Long: "Classify a free-text property search query into an intent category\n" +
			"and extract structured filters (location, type, budget, bedrooms,\n" +
			"features, urgency).",
		Example: `  kejactl intent "2 bedroom apartment in nairobi under 8 million"

  # Record the query in a user's search history
  kejactl intent "family home in karen" --user user-42`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			si, err := c.AnalyzeIntent(context.Background(), args[0], userID)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(si)
			}

			return printIntent(si)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user ID to record the query against")

	return cmd
}
