package cli

import (
	"io"

	"github.com/spf13/cobra"
)

type versionView struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := versionView{
				Version: valueOrNA(c.buildInfo.BuildVersion()),
				Date:    valueOrNA(c.buildInfo.BuildDate()),
				Commit:  valueOrNA(c.buildInfo.BuildCommit()),
			}
			return c.output.print(cmd.Context(), cmd.OutOrStdout(), v, func(w io.Writer) error {
				return renderFields(w, [][2]string{
					{"Build version", v.Version},
					{"Build date", v.Date},
					{"Build commit", v.Commit},
				})
			})
		},
	}
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
