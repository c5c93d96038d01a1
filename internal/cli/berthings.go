package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-port-ops/internal/service"
	"github.com/MKhiriev/go-port-ops/models"
)

// timeLayouts are accepted by --arrival and --departure, tried in order.
var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}

func parseTime(flag, s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --%s %q: use RFC 3339 or YYYY-MM-DD[ HH:MM]", flag, s)
}

type berthingFlags struct {
	ship      string
	dock      string
	arrival   string
	departure string
	purpose   string
	notes     string
}

func (f *berthingFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.ship, "ship", "", "Ship ID")
	fs.StringVar(&f.dock, "dock", "", "Dock ID")
	fs.StringVar(&f.arrival, "arrival", "", "Arrival time")
	fs.StringVar(&f.departure, "departure", "", "Departure time")
	fs.StringVar(&f.purpose, "purpose", "", "Purpose of the call, e.g. unloading")
	fs.StringVar(&f.notes, "notes", "", "Free-form notes")
}

func (f *berthingFlags) apply(fs *pflag.FlagSet, b *models.Berthing) error {
	if fs.Changed("ship") {
		b.Ship = models.RefTo(f.ship)
	}
	if fs.Changed("dock") {
		b.Dock = models.RefTo(f.dock)
	}
	if fs.Changed("arrival") {
		t, err := parseTime("arrival", f.arrival)
		if err != nil {
			return err
		}
		b.ArrivalTime = t
	}
	if fs.Changed("departure") {
		t, err := parseTime("departure", f.departure)
		if err != nil {
			return err
		}
		b.DepartureTime = t
	}
	if fs.Changed("purpose") {
		b.Purpose = f.purpose
	}
	if fs.Changed("notes") {
		b.Notes = f.notes
	}
	return nil
}

func (c *CLI) newBerthingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "berthings",
		Aliases: []string{"berthing", "b"},
		Short:   "Manage berthing requests",
	}

	list := func(use, short string, alias []string, fetch func(service.BerthingService, context.Context) ([]models.Berthing, error)) *cobra.Command {
		return &cobra.Command{
			Use:     use,
			Aliases: alias,
			Short:   short,
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				svc, err := c.services(cmd)
				if err != nil {
					return err
				}
				berthings, err := fetch(svc.Berthings, cmd.Context())
				if err != nil {
					return err
				}
				return c.printBerthings(cmd, berthings)
			},
		}
	}

	listBy := func(use, short string, fetch func(service.BerthingService, context.Context, string) ([]models.Berthing, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := c.services(cmd)
				if err != nil {
					return err
				}
				berthings, err := fetch(svc.Berthings, cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.printBerthings(cmd, berthings)
			},
		}
	}

	cmd.AddCommand(
		list("list", "List all berthings", []string{"ls"}, service.BerthingService.List),
		list("current", "List berthings occupying a dock now", nil, service.BerthingService.Current),
		list("mine", "List berthings you requested", []string{"my-requests"}, service.BerthingService.MyRequests),
		listBy("by-ship SHIP_ID", "List berthings of a ship", service.BerthingService.ByShip),
		listBy("by-dock DOCK_ID", "List berthings at a dock", service.BerthingService.ByDock),
		&cobra.Command{
			Use:   "get ID",
			Short: "Show a berthing",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := c.services(cmd)
				if err != nil {
					return err
				}
				b, err := svc.Berthings.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.printBerthing(cmd, b)
			},
		},
		c.newBerthingRequestCmd(),
		c.newBerthingUpdateCmd(),
		c.newBerthingStatusCmd(),
		c.newDeleteCmd("berthing", func(cmd *cobra.Command, id string) error {
			svc, err := c.services(cmd)
			if err != nil {
				return err
			}
			return svc.Berthings.Delete(cmd.Context(), id)
		}),
	)

	return cmd
}

func (c *CLI) newBerthingRequestCmd() *cobra.Command {
	var flags berthingFlags

	cmd := &cobra.Command{
		Use:   "request",
		Short: "File a berthing request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.services(cmd)
			if err != nil {
				return err
			}

			var b models.Berthing
			if err := flags.apply(cmd.Flags(), &b); err != nil {
				return err
			}

			created, err := svc.Berthings.Request(cmd.Context(), b)
			if err != nil {
				return err
			}
			return c.printBerthing(cmd, created)
		},
	}

	flags.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("ship")
	_ = cmd.MarkFlagRequired("dock")
	_ = cmd.MarkFlagRequired("arrival")

	return cmd
}

func (c *CLI) newBerthingUpdateCmd() *cobra.Command {
	var flags berthingFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change the given fields of a berthing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.services(cmd)
			if err != nil {
				return err
			}

			b, err := svc.Berthings.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := flags.apply(cmd.Flags(), &b); err != nil {
				return err
			}

			updated, err := svc.Berthings.Update(cmd.Context(), args[0], b)
			if err != nil {
				return err
			}
			return c.printBerthing(cmd, updated)
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func (c *CLI) newBerthingStatusCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Move a berthing to another status",
		Long:  "Move a berthing to another status: pending, approved, rejected, active, completed, cancelled.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.services(cmd)
			if err != nil {
				return err
			}

			b, err := svc.Berthings.SetStatus(cmd.Context(), args[0], models.BerthingStatusUpdate{
				Status: models.BerthingStatus(args[1]),
				Reason: reason,
			})
			if err != nil {
				return err
			}
			return c.printBerthing(cmd, b)
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Reason recorded with the change")

	return cmd
}

func (c *CLI) printBerthings(cmd *cobra.Command, berthings []models.Berthing) error {
	return c.output.print(cmd.Context(), cmd.OutOrStdout(), berthings, func(w io.Writer) error {
		return renderBerthings(w, berthings)
	})
}

func (c *CLI) printBerthing(cmd *cobra.Command, b models.Berthing) error {
	return c.output.print(cmd.Context(), cmd.OutOrStdout(), b, func(w io.Writer) error {
		return renderFields(w, [][2]string{
			{"ID", b.ID},
			{"Ship", orDash(b.Ship.String())},
			{"Dock", orDash(b.Dock.String())},
			{"Status", orDash(string(b.Status))},
			{"Arrival", formatTime(b.ArrivalTime)},
			{"Departure", formatTime(b.DepartureTime)},
			{"Purpose", orDash(b.Purpose)},
			{"Notes", orDash(b.Notes)},
			{"Requested by", orDash(b.RequestedBy.String())},
			{"Created", formatTime(b.CreatedAt)},
		})
	})
}

func renderBerthings(w io.Writer, berthings []models.Berthing) error {
	rows := make([][]string, 0, len(berthings))
	for _, b := range berthings {
		rows = append(rows, []string{
			b.ID,
			orDash(b.Ship.String()),
			orDash(b.Dock.String()),
			orDash(string(b.Status)),
			formatTime(b.ArrivalTime),
			formatTime(b.DepartureTime),
		})
	}
	return renderTable(w, "No berthings.", []string{"ID", "SHIP", "DOCK", "STATUS", "ARRIVAL", "DEPARTURE"}, rows)
}
