// Package main implements the xbwd executable.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/xbridge-witness/xbwd/internal/app"
	"github.com/xbridge-witness/xbwd/internal/cli"
	"github.com/xbridge-witness/xbwd/internal/config"
	"github.com/xbridge-witness/xbwd/internal/rpccall"
	"github.com/xbridge-witness/xbwd/internal/selftest"
	"github.com/xbridge-witness/xbwd/internal/severity"
	"github.com/xbridge-witness/xbwd/internal/signalctx"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// parse CLI config
	opts, err := cli.Parse(args)
	if err != nil {
		cli.PrintUsageError(stderr)
		return 1
	}
	// get main process context, which cancels on SIGINT or SIGTERM
	ctx, stop := signalctx.GetContext()
	defer stop()
	d := cli.NewDispatcher(
		stdout,
		stderr,
		selftest.NewRunner(cli.SelfTests()...),
		rpccall.NewClient(),
		func(cfg *config.Config, sev severity.Severity) cli.Service {
			return app.New(cfg, sev)
		},
	)
	code, err := d.Run(ctx, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Exception: %v\n", err)
		return 1
	}
	return code
}
