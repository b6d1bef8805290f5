package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jengzang/dispatch-backend-go/internal/analysis"
	"github.com/jengzang/dispatch-backend-go/internal/auth"
	"github.com/jengzang/dispatch-backend-go/internal/database"
	"github.com/jengzang/dispatch-backend-go/internal/format"
	"github.com/jengzang/dispatch-backend-go/internal/loader"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// importCmd copies the CSV exports into the SQLite database.
// Usage: dispatchctl import [--data-dir dir | --base-url url] [--db path]
func importCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Import the CSV exports into SQLite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			if err := database.Init(database.Config{Path: opts.dbPath}); err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer database.Close()

			counts, err := loader.Import(ctx, opts.csvSource(), database.GetDB())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d trips, %d routes, %d drivers, %d segments into %s\n",
				counts.Trips, counts.Routes, counts.Drivers, counts.Segments, opts.dbPath)
			return nil
		},
	}
}

// searchCmd runs the three-tier corridor search.
// Usage: dispatchctl search <from> <to>
func searchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search <from> <to>",
		Short: "Find routes, corridors and drivers between two cities",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			svc, cleanup, err := opts.loadService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := svc.Search(args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Empty() {
				fmt.Fprintf(out, "no matches for %s → %s\n", args[0], args[1])
				return nil
			}

			tw := newTable(out)
			fmt.Fprintf(tw, "Direct routes (%d)\n", len(result.Exact))
			for _, r := range result.Exact {
				fmt.Fprintf(tw, "  %s → %s\t%d trips\t%d drivers\t%s\n",
					r.OriginCity, r.DestCity, r.TotalTrips, r.UniqueDrivers, format.CurrencyValue(r.AvgCost))
			}
			fmt.Fprintf(tw, "Corridors (%d)\n", len(result.Partial))
			for _, s := range result.Partial {
				fmt.Fprintf(tw, "  %s → %s\t%d trips\t%s\n",
					s.OriginCity, s.DestCity, s.Trips, format.CitiesPreview(s.Segments))
			}
			fmt.Fprintf(tw, "Drivers in the area (%d)\n", len(result.Zone))
			for _, d := range result.Zone {
				fmt.Fprintf(tw, "  %s\t%s\t%d trips\t%d routes\n",
					d.DriverName, format.Phone(d.DriverPhone), d.TotalTrips, d.UniqueRoutes)
			}
			return tw.Flush()
		},
	}
}

// driverCmd prints one driver's per-route rollups.
// Usage: dispatchctl driver <name>
func driverCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "driver <name...>",
		Short: "Show a driver's routes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			svc, cleanup, err := opts.loadService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			name := strings.Join(args, " ")
			profile, err := svc.DriverProfile(name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if profile.Summary != nil {
				fmt.Fprintf(out, "%s  %s  %d trips, %d routes\n", name,
					format.Phone(profile.Summary.DriverPhone), profile.Summary.TotalTrips, profile.Summary.UniqueRoutes)
			} else {
				fmt.Fprintln(out, name)
			}

			tw := newTable(out)
			fmt.Fprintln(tw, "ROUTE\tTRIPS\tAVG PRICE\tAVG COST\tMARGIN\tLAST TRIP")
			for _, r := range profile.Routes {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n", r.Route, r.Trips,
					format.CurrencyValue(r.AvgPrice), format.CurrencyValue(r.AvgCost),
					format.CurrencyValue(r.AvgMargin), format.Date(r.LastDate, r.LastTime))
			}
			return tw.Flush()
		},
	}
}

// routeCmd prints the drivers of one route.
// Usage: dispatchctl route <origin> <dest>
func routeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "route <origin> <dest>",
		Short: "Show the drivers of a route",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			svc, cleanup, err := opts.loadService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			details, err := svc.RouteDetails(args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s → %s  %d trips\n", details.OriginCity, details.DestCity, details.TotalTrips)
			fmt.Fprintf(out, "via %s\n", format.CitiesPreview(details.Cities))

			tw := newTable(out)
			fmt.Fprintln(tw, "DRIVER\tPHONE\tTRIPS\tAVG PRICE\tAVG COST\tMARGIN\tVEHICLES")
			for _, d := range details.Drivers {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n", d.DriverName, format.Phone(d.DriverPhone), d.Trips,
					format.CurrencyValue(d.AvgPrice), format.CurrencyValue(d.AvgCost),
					format.CurrencyValue(d.AvgMargin), strings.Join(d.Vehicles, ", "))
			}
			return tw.Flush()
		},
	}
}

// topCmd ranks routes or drivers by trip count.
// Usage: dispatchctl top routes|drivers [--limit N]
func topCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:       "top routes|drivers",
		Short:     "Rank routes or drivers by trip count",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"routes", "drivers"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			svc, cleanup, err := opts.loadService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tw := newTable(cmd.OutOrStdout())
			switch args[0] {
			case "routes":
				routes, _, err := svc.TopRoutes(limit)
				if err != nil {
					return err
				}
				fmt.Fprintln(tw, "#\tROUTE\tTRIPS\tDRIVERS\tAVG COST")
				for i, r := range routes {
					fmt.Fprintf(tw, "%d\t%s → %s\t%d\t%d\t%s\n", i+1, r.OriginCity, r.DestCity,
						r.TotalTrips, r.UniqueDrivers, format.CurrencyValue(r.AvgCost))
				}
			default:
				drivers, _, err := svc.TopDrivers(limit)
				if err != nil {
					return err
				}
				fmt.Fprintln(tw, "#\tDRIVER\tPHONE\tTRIPS\tROUTES\tAVG COST")
				for i, d := range drivers {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%s\n", i+1, d.DriverName, format.Phone(d.DriverPhone),
						d.TotalTrips, d.UniqueRoutes, format.CurrencyValue(d.AvgCost))
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", analysis.DefaultPresets[0], "rows to show (-1 = all)")
	return cmd
}

// citiesCmd lists distinct cities, optionally filtered by prefix.
// Usage: dispatchctl cities [prefix]
func citiesCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "cities [prefix]",
		Short: "List known cities",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			svc, cleanup, err := opts.loadService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			cities, err := svc.Cities(prefix, limit)
			if err != nil {
				return err
			}
			for _, c := range cities {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum cities (0 = all)")
	return cmd
}

// fleetCmd prints the fleet overview.
// Usage: dispatchctl fleet [--limit N]
func fleetCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "fleet",
		Short: "Summarize vehicle brands, models and popular routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			svc, cleanup, err := opts.loadService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fleet, err := svc.Fleet(limit)
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintf(tw, "Trips: %d\tavg price %s\tavg cost %s\n", fleet.TotalTrips,
				format.CurrencyValue(fleet.AvgPrice), format.CurrencyValue(fleet.AvgCost))
			fmt.Fprintln(tw, "BRAND\tTRIPS\tSHARE")
			for _, b := range fleet.Brands {
				fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", b.Brand, b.Trips, b.Share)
			}
			fmt.Fprintln(tw, "MODEL\tTRIPS\tAVG PRICE")
			for _, m := range fleet.Models {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", m.Model, m.Trips, format.CurrencyValue(m.AvgPrice))
			}
			fmt.Fprintln(tw, "ROUTE\tTRIPS\tAVG PRICE")
			for _, r := range fleet.Routes {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", r.Route, r.Trips, format.CurrencyValue(r.AvgPrice))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "rows per list (0 = all)")
	return cmd
}

// tokenCmd issues an admin token for POST /api/v1/admin/reload.
// Usage: dispatchctl token [--subject name] [--ttl 24h]
func tokenCmd(opts *options) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an admin token signed with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := auth.IssueToken(opts.secret, subject, auth.RoleAdmin, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "dispatchctl", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
