package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-port-ops/internal/adapter"
	"github.com/MKhiriev/go-port-ops/internal/app"
	"github.com/MKhiriev/go-port-ops/internal/service"
	"github.com/MKhiriev/go-port-ops/internal/utils"
	"github.com/MKhiriev/go-port-ops/models"
)

// passwordFlags reads a password from --password or, with --password-stdin,
// from the first line of stdin.
type passwordFlags struct {
	name      string
	value     string
	fromStdin bool
}

func (p *passwordFlags) register(cmd *cobra.Command, name, usage string) {
	p.name = name
	cmd.Flags().StringVar(&p.value, name, "", usage)
	cmd.Flags().BoolVar(&p.fromStdin, name+"-stdin", false, "Read --"+name+" from stdin")
	cmd.MarkFlagsMutuallyExclusive(name, name+"-stdin")
}

func (p *passwordFlags) read(in io.Reader) (string, error) {
	if !p.fromStdin {
		return p.value, nil
	}

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading --%s from stdin: %w", p.name, err)
		}
		return "", fmt.Errorf("--%s-stdin: stdin is empty", p.name)
	}
	return strings.TrimRight(scanner.Text(), "\r"), nil
}

func (c *CLI) newLoginCmd() *cobra.Command {
	var (
		email    string
		password passwordFlags
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		Long: "Sign in with --email and --password (or --password-stdin).\n" +
			"Without a password an interactive form is opened.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.application(cmd)
			if err != nil {
				return err
			}
			pass, err := password.read(cmd.InOrStdin())
			if err != nil {
				return err
			}

			var user models.User
			if pass == "" {
				user, err = a.TUI.LoginFlow(cmd.Context(), email)
			} else {
				c.nav.mute()
				user, err = a.Services.Auth.Login(cmd.Context(), models.LoginRequest{Email: email, Password: pass})
				if errors.Is(err, adapter.ErrUnauthorized) {
					return withMessage(app.MsgInvalidEmailPassword, err)
				}
			}
			if err != nil {
				return err
			}

			return c.output.print(cmd.Context(), cmd.OutOrStdout(), user, func(w io.Writer) error {
				return notice(w, "Signed in as %s (%s)", user.Email, orDash(string(user.Role)))
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	password.register(cmd, "password", "Account password")

	return cmd
}

func (c *CLI) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.application(cmd)
			if err != nil {
				return err
			}

			c.nav.mute()
			if err := a.Services.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			return notice(cmd.OutOrStdout(), "Signed out")
		},
	}
}

func (c *CLI) newRegisterCmd() *cobra.Command {
	var (
		req      models.RegisterRequest
		role     string
		password passwordFlags
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in with it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.application(cmd)
			if err != nil {
				return err
			}
			if req.Password, err = password.read(cmd.InOrStdin()); err != nil {
				return err
			}
			req.Role = models.Role(role)

			c.nav.mute()
			user, err := a.Services.Auth.Register(cmd.Context(), req)
			if errors.Is(err, adapter.ErrConflict) {
				return withMessage(app.MsgEmailAlreadyExists, err)
			}
			if err != nil {
				return err
			}

			return c.output.print(cmd.Context(), cmd.OutOrStdout(), user, func(w io.Writer) error {
				return notice(w, "Account %s created, signed in as %s", user.ID, user.Email)
			})
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&role, "role", "", "Role: admin, port_authority, ship_agent")
	cmd.Flags().StringVar(&req.Company, "company", "", "Company name")
	password.register(cmd, "password", "Account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (c *CLI) newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.services(cmd)
			if err != nil {
				return err
			}

			user, err := svc.Auth.Me(cmd.Context())
			if err != nil {
				return err
			}

			return c.output.print(cmd.Context(), cmd.OutOrStdout(), user, func(w io.Writer) error {
				return renderFields(w, userFields(user))
			})
		},
	}
}

func (c *CLI) newForgotPasswordCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.application(cmd)
			if err != nil {
				return err
			}

			msg, err := a.Services.Auth.ForgotPassword(cmd.Context(), email)
			if err != nil {
				return err
			}
			return c.printMessage(cmd, msg)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (c *CLI) newResetPasswordCmd() *cobra.Command {
	var (
		token    string
		password passwordFlags
	)

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password with the token from the reset link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.application(cmd)
			if err != nil {
				return err
			}
			pass, err := password.read(cmd.InOrStdin())
			if err != nil {
				return err
			}

			msg, err := a.Services.Auth.ResetPassword(cmd.Context(), models.ResetPasswordRequest{Token: token, Password: pass})
			if err != nil {
				return err
			}
			return c.printMessage(cmd, msg)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Reset token")
	password.register(cmd, "password", "New password")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

func (c *CLI) newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Trade the stored token for a fresh one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.application(cmd)
			if err != nil {
				return err
			}

			if err := a.Services.Auth.RefreshToken(cmd.Context()); err != nil {
				return err
			}

			status := c.sessionStatus(cmd, a.Session.Token(cmd.Context()))
			return c.output.print(cmd.Context(), cmd.OutOrStdout(), status, func(w io.Writer) error {
				return notice(w, "Token refreshed, expires %s", orDash(status.ExpiresAt))
			})
		},
	}
}

// sessionView is the status command output.
type sessionView struct {
	State     string `json:"state"`
	APIURL    string `json:"apiUrl"`
	UserID    string `json:"userId,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
	Expired   bool   `json:"expired,omitempty"`
}

func (c *CLI) sessionStatus(cmd *cobra.Command, token string) sessionView {
	view := sessionView{
		State:  c.app.Session.State(cmd.Context()).String(),
		APIURL: c.app.API().Endpoints().BaseURL,
	}
	if token == "" {
		return view
	}

	claims, err := utils.ParseClaimsUnverified(token)
	if err != nil {
		c.runLog.Debug().Err(err).Msg("stored token is not a readable JWT")
		return view
	}

	view.UserID = claims.Subject
	view.Email = claims.Email
	view.Role = string(claims.Role)
	if claims.ExpiresAt != nil {
		view.ExpiresAt = claims.ExpiresAt.Time.UTC().Format(time.RFC3339)
		view.Expired = claims.ExpiresAt.Time.Before(time.Now())
	}
	return view
}

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the local session state",
		Long:  "Show the local session state. The stored token is decoded without contacting the API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.application(cmd)
			if err != nil {
				return err
			}

			status := c.sessionStatus(cmd, a.Session.Token(cmd.Context()))
			return c.output.print(cmd.Context(), cmd.OutOrStdout(), status, func(w io.Writer) error {
				expired := "no"
				if status.Expired {
					expired = "yes"
				}
				return renderFields(w, [][2]string{
					{"State", status.State},
					{"API", status.APIURL},
					{"User", orDash(status.UserID)},
					{"Email", orDash(status.Email)},
					{"Role", orDash(status.Role)},
					{"Expires", orDash(status.ExpiresAt)},
					{"Expired", expired},
				})
			})
		},
	}
}

func (c *CLI) newTokenCmd() *cobra.Command {
	var copyToken bool

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print the stored bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.application(cmd)
			if err != nil {
				return err
			}

			token := a.Session.Token(cmd.Context())
			if token == "" {
				return service.ErrNotAuthenticated
			}

			if copyToken {
				if err := clipboard.WriteAll(token); err != nil {
					return fmt.Errorf("error copying token: %w", err)
				}
				return notice(cmd.ErrOrStderr(), "Token copied to clipboard")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().BoolVar(&copyToken, "copy", false, "Copy the token to the clipboard instead of printing it")

	return cmd
}

func (c *CLI) printMessage(cmd *cobra.Command, msg string) error {
	return c.output.print(cmd.Context(), cmd.OutOrStdout(), models.MessageResponse{Message: msg}, func(w io.Writer) error {
		return notice(w, "%s", msg)
	})
}

func userFields(u models.User) [][2]string {
	return [][2]string{
		{"ID", u.ID},
		{"Name", orDash(u.Name)},
		{"Email", u.Email},
		{"Role", orDash(string(u.Role))},
		{"Phone", orDash(u.Phone)},
		{"Company", orDash(u.Company)},
		{"Created", formatTime(u.CreatedAt)},
	}
}
