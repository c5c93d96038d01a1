package cli

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-port-ops/models"
)

type dockFlags struct {
	name     string
	code     string
	location string
	length   float64
	depth    float64
	capacity int
	status   string
}

func (f *dockFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "Dock name")
	fs.StringVar(&f.code, "code", "", "Short dock code")
	fs.StringVar(&f.location, "location", "", "Location inside the port")
	fs.Float64Var(&f.length, "length", 0, "Berth length in meters")
	fs.Float64Var(&f.depth, "depth", 0, "Water depth in meters")
	fs.IntVar(&f.capacity, "capacity", 0, "Number of vessels the dock can host")
	fs.StringVar(&f.status, "status", "", "Status: available, occupied, maintenance")
}

// apply copies the flags that were set on fs into dock.
func (f *dockFlags) apply(fs *pflag.FlagSet, dock *models.Dock) {
	if fs.Changed("name") {
		dock.Name = f.name
	}
	if fs.Changed("code") {
		dock.Code = f.code
	}
	if fs.Changed("location") {
		dock.Location = f.location
	}
	if fs.Changed("length") {
		dock.Length = f.length
	}
	if fs.Changed("depth") {
		dock.Depth = f.depth
	}
	if fs.Changed("capacity") {
		dock.Capacity = f.capacity
	}
	if fs.Changed("status") {
		dock.Status = models.DockStatus(f.status)
	}
}

func (c *CLI) newDocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "docks",
		Aliases: []string{"dock"},
		Short:   "Manage docks",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List docks",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				svc, err := c.services(cmd)
				if err != nil {
					return err
				}
				docks, err := svc.Docks.List(cmd.Context())
				if err != nil {
					return err
				}
				return c.output.print(cmd.Context(), cmd.OutOrStdout(), docks, func(w io.Writer) error {
					return renderDocks(w, docks)
				})
			},
		},
		&cobra.Command{
			Use:   "get ID",
			Short: "Show a dock",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := c.services(cmd)
				if err != nil {
					return err
				}
				dock, err := svc.Docks.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.printDock(cmd, dock)
			},
		},
		c.newDockCreateCmd(),
		c.newDockUpdateCmd(),
		c.newDeleteCmd("dock", func(cmd *cobra.Command, id string) error {
			svc, err := c.services(cmd)
			if err != nil {
				return err
			}
			return svc.Docks.Delete(cmd.Context(), id)
		}),
	)

	return cmd
}

func (c *CLI) newDockCreateCmd() *cobra.Command {
	var flags dockFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a dock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.services(cmd)
			if err != nil {
				return err
			}

			var dock models.Dock
			flags.apply(cmd.Flags(), &dock)

			created, err := svc.Docks.Create(cmd.Context(), dock)
			if err != nil {
				return err
			}
			return c.printDock(cmd, created)
		},
	}

	flags.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (c *CLI) newDockUpdateCmd() *cobra.Command {
	var flags dockFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change the given fields of a dock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.services(cmd)
			if err != nil {
				return err
			}

			dock, err := svc.Docks.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			flags.apply(cmd.Flags(), &dock)

			updated, err := svc.Docks.Update(cmd.Context(), args[0], dock)
			if err != nil {
				return err
			}
			return c.printDock(cmd, updated)
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func (c *CLI) printDock(cmd *cobra.Command, dock models.Dock) error {
	return c.output.print(cmd.Context(), cmd.OutOrStdout(), dock, func(w io.Writer) error {
		return renderFields(w, [][2]string{
			{"ID", dock.ID},
			{"Name", dock.Name},
			{"Code", orDash(dock.Code)},
			{"Location", orDash(dock.Location)},
			{"Length (m)", formatFloat(dock.Length)},
			{"Depth (m)", formatFloat(dock.Depth)},
			{"Capacity", strconv.Itoa(dock.Capacity)},
			{"Status", orDash(string(dock.Status))},
			{"Created", formatTime(dock.CreatedAt)},
			{"Updated", formatTime(dock.UpdatedAt)},
		})
	})
}

func renderDocks(w io.Writer, docks []models.Dock) error {
	rows := make([][]string, 0, len(docks))
	for _, d := range docks {
		rows = append(rows, []string{d.ID, d.Name, orDash(d.Code), orDash(d.Location), strconv.Itoa(d.Capacity), orDash(string(d.Status))})
	}
	return renderTable(w, "No docks.", []string{"ID", "NAME", "CODE", "LOCATION", "CAPACITY", "STATUS"}, rows)
}

// newDeleteCmd builds the `delete ID` subcommand shared by every resource.
func (c *CLI) newDeleteCmd(kind string, del func(cmd *cobra.Command, id string) error) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a " + kind,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := del(cmd, args[0]); err != nil {
				return err
			}
			return c.output.print(cmd.Context(), cmd.OutOrStdout(), deletedView{ID: args[0], Deleted: true}, func(w io.Writer) error {
				return notice(w, "Deleted %s %s", kind, args[0])
			})
		},
	}
}

type deletedView struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
