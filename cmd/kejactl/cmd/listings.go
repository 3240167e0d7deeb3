package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/kejahub/keja-match/internal/api/client"
	domain "github.com/kejahub/keja-match/pkg/types"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Query listings",
		Long: "Query and inspect property listings ingested from partner feeds\n" +
			"or submitted directly through the API.",
	}

	listingsRoot.AddCommand(
		listingsListCmd(),
		listingsGetCmd(),
		listingsAddCmd(),
	)

	return listingsRoot
}

func listingsListCmd() *cobra.Command {
	var (
		location     string
		propertyType string
		priceMin     float64
		priceMax     float64
		minBedrooms  int
		limit        int
		offset       int
		orderBy      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings with optional filters",
		Long: "List property listings with optional filters for location,\n" +
			"property type, price range, and bedroom count.",
		Example: `  # List all listings
  kejactl listings list

  # Apartments in Nairobi under 10M
  kejactl listings list --location nairobi --type apartment --price-max 10000000

  # Cheapest first with pagination
  kejactl listings list --order-by price --limit 20 --offset 40`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListListings(context.Background(), &apiclient.ListListingsParams{
				Location:     location,
				PropertyType: propertyType,
				PriceMin:     priceMin,
				PriceMax:     priceMax,
				MinBedrooms:  minBedrooms,
				Limit:        limit,
				Offset:       offset,
				OrderBy:      orderBy,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Listings) == 0 {
				fmt.Println("No listings found.")
				return nil
			}

			fmt.Printf("Showing %d of %d listings\n\n", len(resp.Listings), resp.Total)
			return printListingsTable(resp.Listings)
		},
	}
	cmd.Flags().StringVar(&location, "location", "", "location filter (comma-separated)")
	cmd.Flags().StringVar(&propertyType, "type", "", "property type filter")
	cmd.Flags().Float64Var(&priceMin, "price-min", 0, "minimum price in KES")
	cmd.Flags().Float64Var(&priceMax, "price-max", 0, "maximum price in KES")
	cmd.Flags().IntVar(&minBedrooms, "min-bedrooms", 0, "minimum bedroom count")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort order (price, newest)")

	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show listing details",
		Example: `  kejactl listings get 7f3c2a10-...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			l, err := c.GetListing(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(l)
			}

			return printListingDetail(l)
		},
	}
}

func listingsAddCmd() *cobra.Command {
	var (
		title        string
		price        float64
		location     string
		propertyType string
		bedrooms     int
		bathrooms    int
		areaSqm      float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Submit a listing directly",
		Example: `  kejactl listings add --title "3BR Kilimani apartment" \
    --price 8500000 --location nairobi --type apartment --bedrooms 3`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			created, err := c.CreateListing(context.Background(), &domain.Listing{
				Title:        title,
				Price:        price,
				Location:     location,
				PropertyType: domain.PropertyType(propertyType),
				Bedrooms:     bedrooms,
				Bathrooms:    bathrooms,
				AreaSqm:      areaSqm,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(created)
			}

			fmt.Println("Created listing", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "listing title")
	cmd.Flags().Float64Var(&price, "price", 0, "price in KES")
	cmd.Flags().StringVar(&location, "location", "", "location")
	cmd.Flags().StringVar(&propertyType, "type", "", "property type (apartment, house, townhouse, commercial)")
	cmd.Flags().IntVar(&bedrooms, "bedrooms", 0, "bedroom count")
	cmd.Flags().IntVar(&bathrooms, "bathrooms", 0, "bathroom count")
	cmd.Flags().Float64Var(&areaSqm, "area", 0, "area in square meters")
	cobra.CheckErr(cmd.MarkFlagRequired("title"))
	cobra.CheckErr(cmd.MarkFlagRequired("price"))
	cobra.CheckErr(cmd.MarkFlagRequired("location"))
	cobra.CheckErr(cmd.MarkFlagRequired("type"))

	return cmd
}
