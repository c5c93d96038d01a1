package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (c *CLI) newOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show docks, ships and current berthings at once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.services(cmd)
			if err != nil {
				return err
			}

			overview, err := svc.Overview(cmd.Context())
			if err != nil {
				return err
			}

			return c.output.print(cmd.Context(), cmd.OutOrStdout(), overview, func(w io.Writer) error {
				sections := []struct {
					title  string
					render func(io.Writer) error
				}{
					{fmt.Sprintf("Docks (%d)", len(overview.Docks)), func(w io.Writer) error { return renderDocks(w, overview.Docks) }},
					{fmt.Sprintf("Ships (%d)", len(overview.Ships)), func(w io.Writer) error { return renderShips(w, overview.Ships) }},
					{fmt.Sprintf("Current berthings (%d)", len(overview.CurrentBerthings)), func(w io.Writer) error {
						return renderBerthings(w, overview.CurrentBerthings)
					}},
				}

				for i, s := range sections {
					if i > 0 {
						if _, err := fmt.Fprintln(w); err != nil {
							return err
						}
					}
					if err := notice(w, "%s", s.title); err != nil {
						return err
					}
					if err := s.render(w); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
