package cli

//go:generate go tool mockgen -source=dispatcher.go -destination=mock_dispatcher_test.go -package=cli_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime/pprof"

	"github.com/xbridge-witness/xbwd/internal/buildinfo"
	"github.com/xbridge-witness/xbwd/internal/command"
	"github.com/xbridge-witness/xbwd/internal/config"
	"github.com/xbridge-witness/xbwd/internal/rpccall"
	"github.com/xbridge-witness/xbwd/internal/severity"
)

// ErrNoConfig is returned if the server or an admin request is run without
// --conf.
var ErrNoConfig = errors.New("must specify a config file")

// ErrSetup is reported on stderr if the server could not be set up.
var ErrSetup = errors.New("couldn't set up server")

// SelfTester runs the self-test suites embedded in the binary.
type SelfTester interface {
	RunAll(w io.Writer) bool
}

// RPCCaller sends a single admin request to a running server.
type RPCCaller interface {
	FromCommandLine(ctx context.Context, cfg *config.Config, req rpccall.Request,
		sev severity.Severity) (int, rpccall.Response)
}

// Service is the long-running xbwd server.
type Service interface {
	Setup(ctx context.Context) bool
	Start(ctx context.Context)
	Run() error
}

// ServiceFactory constructs the server from its configuration.
type ServiceFactory func(*config.Config, severity.Severity) Service

// Dispatcher executes the Action selected by the command line.
type Dispatcher struct {
	stdout     io.Writer
	stderr     io.Writer
	selfTester SelfTester
	rpc        RPCCaller
	newService ServiceFactory
}

// NewDispatcher returns a new Dispatcher which writes to the given streams
// and delegates to the given collaborators.
func NewDispatcher(
	stdout,
	stderr io.Writer,
	selfTester SelfTester,
	rpc RPCCaller,
	newService ServiceFactory,
) *Dispatcher {
	return &Dispatcher{
		stdout:     stdout,
		stderr:     stderr,
		selfTester: selfTester,
		rpc:        rpc,
		newService: newService,
	}
}

// Run executes the action selected by opts and returns the process exit
// code. A non-nil error should be reported to the user, and implies a
// non-zero exit code.
func (d *Dispatcher) Run(ctx context.Context, opts *Options) (int, error) {
	switch Resolve(opts) {
	case RunTests:
		if d.selfTester.RunAll(d.stdout) {
			return 1, nil
		}
		return 0, nil
	case ShowVersion:
		fmt.Fprintf(d.stdout, "%s version %s\n", buildinfo.ServerName,
			buildinfo.VersionString())
		return 0, nil
	case ShowHelp:
		if err := PrintHelp(d.stdout); err != nil {
			return 1, err
		}
		return 0, nil
	case RunRPC:
		return d.runRPC(ctx, opts)
	default:
		return d.runService(ctx, opts)
	}
}

// loadConfig loads the config file named by opts, applies the logging flags
// to it, and resolves the log severity.
func (d *Dispatcher) loadConfig(opts *Options) (*config.Config, severity.Severity, error) {
	if opts.Conf == nil {
		return nil, 0, ErrNoConfig
	}
	cfg, err := config.Load(*opts.Conf)
	if err != nil {
		return nil, 0, err
	}
	if warning := cfg.ReconcileSilent(opts.Silent); warning != "" {
		fmt.Fprintln(d.stderr, warning)
	}
	return cfg, severity.Resolve(opts.Quiet, opts.Verbose, cfg.LogLevel), nil
}

func (d *Dispatcher) runRPC(ctx context.Context, opts *Options) (int, error) {
	cfg, sev, err := d.loadConfig(opts)
	if err != nil {
		return 1, err
	}
	// do not show logs on the console, only the raw response from the server
	cfg.LogSilent = true
	ctx = pprof.WithLabels(ctx, pprof.Labels("thread", buildinfo.ServerName+": rpc"))
	pprof.SetGoroutineLabels(ctx)
	var cmd string
	if opts.Cmd != nil {
		cmd = *opts.Cmd
	}
	req, err := command.Normalize(opts.JSON, cmd)
	if err != nil {
		return 1, err
	}
	code, res := d.rpc.FromCommandLine(ctx, cfg, req, sev)
	out, err := json.MarshalIndent(res, "", "   ")
	if err != nil {
		return 1, fmt.Errorf("couldn't marshal response: %v", err)
	}
	fmt.Fprintln(d.stdout, string(out))
	return code, nil
}

func (d *Dispatcher) runService(ctx context.Context, opts *Options) (int, error) {
	cfg, sev, err := d.loadConfig(opts)
	if err != nil {
		return 1, err
	}
	svc := d.newService(cfg, sev)
	if !svc.Setup(ctx) {
		// the cause is in the log, which may not be on stderr
		fmt.Fprintln(d.stderr, ErrSetup)
		return 1, nil
	}
	svc.Start(ctx)
	if err = svc.Run(); err != nil {
		return 1, err
	}
	return 0, nil
}
