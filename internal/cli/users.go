package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-port-ops/models"
)

func (c *CLI) newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage user accounts and your profile",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List users",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				svc, err := c.services(cmd)
				if err != nil {
					return err
				}
				users, err := svc.Users.List(cmd.Context())
				if err != nil {
					return err
				}
				return c.output.print(cmd.Context(), cmd.OutOrStdout(), users, func(w io.Writer) error {
					return renderUsers(w, users)
				})
			},
		},
		&cobra.Command{
			Use:   "get ID",
			Short: "Show a user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := c.services(cmd)
				if err != nil {
					return err
				}
				user, err := svc.Users.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.printUser(cmd, user)
			},
		},
		&cobra.Command{
			Use:   "profile",
			Short: "Show your profile",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				svc, err := c.services(cmd)
				if err != nil {
					return err
				}
				user, err := svc.Users.Profile(cmd.Context())
				if err != nil {
					return err
				}
				return c.printUser(cmd, user)
			},
		},
		c.newUpdateProfileCmd(),
		c.newChangePasswordCmd(),
		c.newDeleteCmd("user", func(cmd *cobra.Command, id string) error {
			svc, err := c.services(cmd)
			if err != nil {
				return err
			}
			return svc.Users.Delete(cmd.Context(), id)
		}),
	)

	return cmd
}

func (c *CLI) newUpdateProfileCmd() *cobra.Command {
	var update models.ProfileUpdate

	cmd := &cobra.Command{
		Use:   "update-profile",
		Short: "Change your name, phone or company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.services(cmd)
			if err != nil {
				return err
			}
			user, err := svc.Users.UpdateProfile(cmd.Context(), update)
			if err != nil {
				return err
			}
			return c.printUser(cmd, user)
		},
	}

	cmd.Flags().StringVar(&update.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&update.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&update.Company, "company", "", "Company name")
	cmd.MarkFlagsOneRequired("name", "phone", "company")

	return cmd
}

func (c *CLI) newChangePasswordCmd() *cobra.Command {
	var (
		current string
		next    passwordFlags
	)

	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Change your password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.services(cmd)
			if err != nil {
				return err
			}
			pass, err := next.read(cmd.InOrStdin())
			if err != nil {
				return err
			}

			msg, err := svc.Users.ChangePassword(cmd.Context(), models.ChangePasswordRequest{
				CurrentPassword: current,
				NewPassword:     pass,
			})
			if err != nil {
				return err
			}
			return c.printMessage(cmd, msg)
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "Current password")
	next.register(cmd, "new", "New password")
	_ = cmd.MarkFlagRequired("current")

	return cmd
}

func (c *CLI) printUser(cmd *cobra.Command, user models.User) error {
	return c.output.print(cmd.Context(), cmd.OutOrStdout(), user, func(w io.Writer) error {
		return renderFields(w, userFields(user))
	})
}

func renderUsers(w io.Writer, users []models.User) error {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.ID, orDash(u.Name), u.Email, orDash(string(u.Role)), orDash(u.Company)})
	}
	return renderTable(w, "No users.", []string{"ID", "NAME", "EMAIL", "ROLE", "COMPANY"}, rows)
}
