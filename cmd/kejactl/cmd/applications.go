package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/kejahub/keja-match/internal/api/client"
	domain "github.com/kejahub/keja-match/pkg/types"
)

func applicationsCmd() *cobra.Command {
	appsRoot := &cobra.Command{
		Use:     "applications",
		Aliases: []string{"apps"},
		Short:   "Manage rent-to-own applications",
		Long: "Submit rent-to-own applications and move them through the\n" +
			"review workflow (received, reviewing, approved, declined).",
	}

	appsRoot.AddCommand(
		applicationsSubmitCmd(),
		applicationsListCmd(),
		applicationsGetCmd(),
		applicationsStatusCmd("review", domain.ApplicationReviewing, "Mark an application as under review"),
		applicationsStatusCmd("approve", domain.ApplicationApproved, "Approve an application"),
		applicationsStatusCmd("decline", domain.ApplicationDeclined, "Decline an application"),
	)

	return appsRoot
}

func applicationsSubmitCmd() *cobra.Command {
	var (
		userID      string
		listingID   string
		income      float64
		downPayment float64
		termMonths  int
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a rent-to-own application",
		Example: `  kejactl applications submit --user user-42 --listing 7f3c2a10-... \
    --income 250000

  # Override the default 20% down and 180-month term
  kejactl applications submit --user user-42 --listing 7f3c2a10-... \
    --income 250000 --down-payment 3000000 --term 120`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			app, err := c.CreateApplication(context.Background(), &apiclient.CreateApplicationParams{
				UserID:        userID,
				ListingID:     listingID,
				MonthlyIncome: income,
				DownPayment:   downPayment,
				TermMonths:    termMonths,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(app)
			}

			fmt.Printf("Application %s submitted\n\n", app.ID)
			return printApplicationDetail(app)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "applicant user ID")
	cmd.Flags().StringVar(&listingID, "listing", "", "listing ID")
	cmd.Flags().Float64Var(&income, "income", 0, "monthly income in KES")
	cmd.Flags().Float64Var(&downPayment, "down-payment", 0, "down payment in KES (default: 20% of price)")
	cmd.Flags().IntVar(&termMonths, "term", 0, "term in months (default: 180)")
	cobra.CheckErr(cmd.MarkFlagRequired("user"))
	cobra.CheckErr(cmd.MarkFlagRequired("listing"))
	cobra.CheckErr(cmd.MarkFlagRequired("income"))

	return cmd
}

func applicationsListCmd() *cobra.Command {
	var (
		status string
		userID string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications with optional filters",
		Example: `  # All pending applications
  kejactl applications list --status received

  # One user's applications
  kejactl applications list --user user-42`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListApplications(context.Background(), status, userID, limit)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Applications) == 0 {
				fmt.Println("No applications found.")
				return nil
			}

			fmt.Printf("Showing %d of %d applications\n\n", len(resp.Applications), resp.Total)
			return printApplicationsTable(resp.Applications)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "status filter (received, reviewing, approved, declined)")
	cmd.Flags().StringVar(&userID, "user", "", "applicant filter")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")

	return cmd
}

func applicationsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show application details",
		Example: `  kejactl applications get 9d1e4b22-...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			app, err := c.GetApplication(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(app)
			}

			return printApplicationDetail(app)
		},
	}
}

func applicationsStatusCmd(
	use string,
	status domain.ApplicationStatus,
	short string,
) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:     use + " <id>",
		Short:   short,
		Example: fmt.Sprintf(`  kejactl applications %s 9d1e4b22-... --notes "income verified"`, use),
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			app, err := c.UpdateApplicationStatus(context.Background(), args[0], status, notes)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(app)
			}

			return printApplicationDetail(app)
		},
	}
	cmd.Flags().StringVar(&notes, "notes", "", "reviewer notes")

	return cmd
}
