package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-port-ops/internal/client"
	"github.com/MKhiriev/go-port-ops/internal/config"
	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/internal/service"
	"github.com/MKhiriev/go-port-ops/internal/session"
	"github.com/MKhiriev/go-port-ops/models"
)

// CLI is the portctl command tree. A CLI value may run several commands in
// sequence; each [CLI.Execute] builds its own application.
type CLI struct {
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
	appOptions []client.Option

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	output   outputFlags
	logLevel string
	runLog   *logger.Logger
	app      *client.App
	nav      *navigator
}

// Option customises a [CLI].
type Option func(*CLI)

// WithLogger replaces the default file logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *CLI) {
		c.logger = l
	}
}

// WithAppOptions passes opts to every [client.NewApp] call.
func WithAppOptions(opts ...client.Option) Option {
	return func(c *CLI) {
		c.appOptions = append(c.appOptions, opts...)
	}
}

// WithIO replaces the standard streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(c *CLI) {
		c.stdin, c.stdout, c.stderr = stdin, stdout, stderr
	}
}

// New creates the CLI.
func New(buildInfo models.AppBuildInfo, opts ...Option) *CLI {
	c := &CLI{
		buildInfo: buildInfo,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.NewClientLogger("portctl")
	}
	return c
}

// Execute runs the command named by args.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	c.output = outputFlags{}
	c.logLevel = ""
	c.runLog = c.logger
	c.app = nil
	c.nav = newNavigator(c.stderr)

	root := c.newRootCmd()
	root.SetArgs(args)
	root.SetIn(c.stdin)
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	err := root.ExecuteContext(ctx)

	if c.app != nil {
		if closeErr := c.app.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		c.app = nil
	}

	return err
}

func (c *CLI) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portctl",
		Short:         "Command line client for the port operations API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("log-level") {
				log, err := c.logger.WithLevel(c.logLevel)
				if err != nil {
					return fmt.Errorf("invalid --log-level: %w", err)
				}
				c.runLog = log
			}
			return c.output.validate()
		},
	}

	config.RegisterClientFlags(root.PersistentFlags())
	c.output.register(root.PersistentFlags())
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "debug", "Log file level: debug, info, warn, error")

	root.AddCommand(
		c.newLoginCmd(),
		c.newLogoutCmd(),
		c.newRegisterCmd(),
		c.newWhoamiCmd(),
		c.newForgotPasswordCmd(),
		c.newResetPasswordCmd(),
		c.newRefreshCmd(),
		c.newStatusCmd(),
		c.newTokenCmd(),
		c.newDocksCmd(),
		c.newShipsCmd(),
		c.newBerthingsCmd(),
		c.newUsersCmd(),
		c.newOverviewCmd(),
		c.newVersionCmd(),
	)

	return root
}

// application returns the app of the current run, building it on first use
// from the flags of cmd.
func (c *CLI) application(cmd *cobra.Command) (*client.App, error) {
	if c.app != nil {
		return c.app, nil
	}

	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}

	app, err := client.NewApp(cmd.Context(), cfg, c.nav, c.buildInfo, c.runLog, c.appOptions...)
	if err != nil {
		return nil, err
	}

	c.app = app
	return app, nil
}

// services is [CLI.application] for commands that need a signed-in user. It
// fails fast without contacting the API when no token is stored.
func (c *CLI) services(cmd *cobra.Command) (*service.ClientServices, error) {
	app, err := c.application(cmd)
	if err != nil {
		return nil, err
	}

	if app.Session.State(cmd.Context()) == session.Anonymous {
		return nil, service.ErrNotAuthenticated
	}

	return app.Services, nil
}
