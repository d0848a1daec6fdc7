package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/xbridge-witness/xbwd/internal/config"
)

const usageError = "xbwd: Incorrect command line syntax.\n" +
	"Use '--help' for a list of options.\n"

func TestRun(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	var testCases = map[string]struct {
		args         []string
		expectCode   int
		expectStdout string
		expectStderr string
	}{
		"unknown flag": {
			args:         []string{"--conf", missing, "--bogus"},
			expectCode:   1,
			expectStderr: usageError,
		},
		"two commands": {
			args:         []string{"--conf", missing, "stop", "server_info"},
			expectCode:   1,
			expectStderr: usageError,
		},
		"version": {
			args:         []string{"--version", "--conf", missing},
			expectStdout: "xbwd version ",
		},
		"unittest": {
			args:         []string{"-u"},
			expectStdout: "4 suites, 0 failed",
		},
		"missing config": {
			args:         []string{"--conf", missing, "stop"},
			expectCode:   1,
			expectStderr: "Exception: " + config.ErrNotExist.Error() + "\n",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(tt *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tc.args, &stdout, &stderr)
			assert.Equal(tt, tc.expectCode, code, name)
			assert.Contains(tt, stdout.String(), tc.expectStdout, name)
			if tc.expectStderr == "" {
				assert.Zero(tt, stderr.String(), name)
			} else {
				assert.Equal(tt, tc.expectStderr, stderr.String(), name)
			}
		})
	}
}
