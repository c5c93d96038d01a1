package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-port-ops/models"
)

type shipFlags struct {
	name   string
	imo    string
	kind   string
	flag   string
	length float64
	draft  float64
}

func (f *shipFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "Ship name")
	fs.StringVar(&f.imo, "imo", "", "IMO number")
	fs.StringVar(&f.kind, "type", "", "Type: cargo, container, tanker, passenger, fishing, other")
	fs.StringVar(&f.flag, "flag", "", "Country of registration")
	fs.Float64Var(&f.length, "length", 0, "Overall length in meters")
	fs.Float64Var(&f.draft, "draft", 0, "Maximum draft in meters")
}

func (f *shipFlags) apply(fs *pflag.FlagSet, ship *models.Ship) {
	if fs.Changed("name") {
		ship.Name = f.name
	}
	if fs.Changed("imo") {
		ship.IMONumber = f.imo
	}
	if fs.Changed("type") {
		ship.Type = models.ShipType(f.kind)
	}
	if fs.Changed("flag") {
		ship.Flag = f.flag
	}
	if fs.Changed("length") {
		ship.Length = f.length
	}
	if fs.Changed("draft") {
		ship.Draft = f.draft
	}
}

func (c *CLI) newShipsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ships",
		Aliases: []string{"ship"},
		Short:   "Manage ships",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List ships",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				svc, err := c.services(cmd)
				if err != nil {
					return err
				}
				ships, err := svc.Ships.List(cmd.Context())
				if err != nil {
					return err
				}
				return c.printShips(cmd, ships)
			},
		},
		c.newShipSearchCmd(),
		&cobra.Command{
			Use:   "get ID",
			Short: "Show a ship",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := c.services(cmd)
				if err != nil {
					return err
				}
				ship, err := svc.Ships.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.printShip(cmd, ship)
			},
		},
		c.newShipCreateCmd(),
		c.newShipUpdateCmd(),
		c.newDeleteCmd("ship", func(cmd *cobra.Command, id string) error {
			svc, err := c.services(cmd)
			if err != nil {
				return err
			}
			return svc.Ships.Delete(cmd.Context(), id)
		}),
	)

	return cmd
}

func (c *CLI) newShipSearchCmd() *cobra.Command {
	var (
		query models.ShipSearch
		kind  string
	)

	cmd := &cobra.Command{
		Use:   "search [TEXT]",
		Short: "Search ships by name or IMO number, type and flag",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.services(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				query.Query = args[0]
			}
			query.Type = models.ShipType(kind)

			ships, err := svc.Ships.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			return c.printShips(cmd, ships)
		},
	}

	cmd.Flags().StringVar(&kind, "type", "", "Ship type")
	cmd.Flags().StringVar(&query.Flag, "flag", "", "Country of registration")

	return cmd
}

func (c *CLI) newShipCreateCmd() *cobra.Command {
	var flags shipFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a ship",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.services(cmd)
			if err != nil {
				return err
			}

			var ship models.Ship
			flags.apply(cmd.Flags(), &ship)

			created, err := svc.Ships.Create(cmd.Context(), ship)
			if err != nil {
				return err
			}
			return c.printShip(cmd, created)
		},
	}

	flags.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (c *CLI) newShipUpdateCmd() *cobra.Command {
	var flags shipFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change the given fields of a ship",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.services(cmd)
			if err != nil {
				return err
			}

			ship, err := svc.Ships.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			flags.apply(cmd.Flags(), &ship)

			updated, err := svc.Ships.Update(cmd.Context(), args[0], ship)
			if err != nil {
				return err
			}
			return c.printShip(cmd, updated)
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func (c *CLI) printShips(cmd *cobra.Command, ships []models.Ship) error {
	return c.output.print(cmd.Context(), cmd.OutOrStdout(), ships, func(w io.Writer) error {
		return renderShips(w, ships)
	})
}

func (c *CLI) printShip(cmd *cobra.Command, ship models.Ship) error {
	return c.output.print(cmd.Context(), cmd.OutOrStdout(), ship, func(w io.Writer) error {
		return renderFields(w, [][2]string{
			{"ID", ship.ID},
			{"Name", ship.Name},
			{"IMO", orDash(ship.IMONumber)},
			{"Type", orDash(string(ship.Type))},
			{"Flag", orDash(ship.Flag)},
			{"Length (m)", formatFloat(ship.Length)},
			{"Draft (m)", formatFloat(ship.Draft)},
			{"Owner", orDash(ship.Owner.String())},
			{"Created", formatTime(ship.CreatedAt)},
			{"Updated", formatTime(ship.UpdatedAt)},
		})
	})
}

func renderShips(w io.Writer, ships []models.Ship) error {
	rows := make([][]string, 0, len(ships))
	for _, s := range ships {
		rows = append(rows, []string{s.ID, s.Name, orDash(s.IMONumber), orDash(string(s.Type)), orDash(s.Flag), orDash(s.Owner.String())})
	}
	return renderTable(w, "No ships.", []string{"ID", "NAME", "IMO", "TYPE", "FLAG", "OWNER"}, rows)
}
