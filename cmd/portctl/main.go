package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-port-ops/internal/cli"
	"github.com/MKhiriev/go-port-ops/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.New(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := app.Execute(ctx, args); err != nil {
		code := cli.ExitCode(err)
		if code != 0 {
			fmt.Fprintf(os.Stderr, "portctl: %s\n", cli.UserMessage(err))
		}
		return code
	}
	return 0
}
