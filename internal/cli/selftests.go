package cli

import (
	"errors"

	"github.com/xbridge-witness/xbwd/internal/command"
	"github.com/xbridge-witness/xbwd/internal/config"
	"github.com/xbridge-witness/xbwd/internal/rpccall"
	"github.com/xbridge-witness/xbwd/internal/selftest"
	"github.com/xbridge-witness/xbwd/internal/severity"
)

// SelfTests returns the suites run by --unittest.
func SelfTests() []selftest.Suite {
	return []selftest.Suite{
		{Name: "severity", Run: severitySuite},
		{Name: "command", Run: commandSuite},
		{Name: "config", Run: configSuite},
		{Name: "action", Run: actionSuite},
	}
}

func severitySuite(t *selftest.T) {
	var cases = []struct {
		quiet, verbose bool
		configured     string
		expect         severity.Severity
	}{
		{false, false, "", severity.Info},
		{true, true, "Debug", severity.Fatal},
		{false, true, "Error", severity.Trace},
		{false, false, "Warning", severity.Warning},
		{false, false, "None", severity.Disabled},
		{false, false, "bogus", severity.Info},
	}
	for _, c := range cases {
		t.Expect("Resolve("+c.configured+")", c.expect,
			severity.Resolve(c.quiet, c.verbose, c.configured))
	}
}

func commandSuite(t *selftest.T) {
	api := rpccall.APIMaximumSupportedVersion
	raw := "server_info"
	req, err := command.Normalize(&raw, "")
	if err != nil {
		t.Errorf("bare name: %v", err)
	}
	t.Expect("bare name", rpccall.Request{"method": "server_info", "api_version": api}, req)
	raw = `{"method":"stop","api_version":7}`
	req, err = command.Normalize(&raw, "")
	if err != nil {
		t.Errorf("object: %v", err)
	}
	t.Expect("object", rpccall.Request{"method": "stop", "api_version": api}, req)
	raw = `{"method":`
	if _, err = command.Normalize(&raw, ""); !errors.Is(err, command.ErrParseJSON) {
		t.Errorf("truncated: expected ErrParseJSON, got %v", err)
	}
	if _, err = command.Normalize(nil, "bogus"); !errors.Is(err, command.ErrInvalidCommand) {
		t.Errorf("bogus: expected ErrInvalidCommand, got %v", err)
	}
}

func configSuite(t *selftest.T) {
	cfg, err := config.Parse([]byte(
		`{"RPCEndpoint":{"Host":"127.0.0.1","Port":6010},"DBDir":"/tmp","LogSilent":true}`))
	if err != nil {
		t.Errorf("parse: %v", err)
		return
	}
	t.Expect("warning", config.SilentWithoutLogFile, cfg.ReconcileSilent(false))
	t.Expect("silent", false, cfg.LogSilent)
	if _, err = config.Parse([]byte("[]")); !errors.Is(err, config.ErrInvalidJSON) {
		t.Errorf("array: expected ErrInvalidJSON, got %v", err)
	}
}

func actionSuite(t *selftest.T) {
	raw := "stop"
	t.Expect("unittest", RunTests,
		Resolve(&Options{Unittest: true, Version: true, Help: true, JSON: &raw}))
	t.Expect("version", ShowVersion, Resolve(&Options{Version: true, Help: true}))
	t.Expect("help", ShowHelp, Resolve(&Options{Help: true, Cmd: &raw}))
	t.Expect("json", RunRPC, Resolve(&Options{JSON: &raw}))
	t.Expect("cmd", RunRPC, Resolve(&Options{Cmd: &raw}))
	empty := ""
	t.Expect("empty cmd", RunRPC, Resolve(&Options{Cmd: &empty}))
	t.Expect("service", RunService, Resolve(&Options{}))
}
