// Package selftest runs the self-test suites embedded in the xbwd binary.
package selftest

import (
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// T is passed to a running Suite to record failures.
type T struct {
	failures []string
}

// Errorf records a failure.
func (t *T) Errorf(format string, args ...any) {
	t.failures = append(t.failures, fmt.Sprintf(format, args...))
}

// Expect records a failure with a dump of both values if got is not deeply
// equal to want.
func (t *T) Expect(what string, want, got any) {
	if reflect.DeepEqual(want, got) {
		return
	}
	t.Errorf("%s: expected\n%sgot\n%s", what, spew.Sdump(want), spew.Sdump(got))
}

// Suite is a named self-test.
type Suite struct {
	Name string
	Run  func(*T)
}

// Runner runs a fixed list of suites.
type Runner struct {
	suites []Suite
}

// NewRunner returns a Runner for the given suites.
func NewRunner(suites ...Suite) *Runner {
	return &Runner{suites: suites}
}

// RunAll runs every suite, reporting progress and failures to w, and returns
// true if any suite failed.
func (r *Runner) RunAll(w io.Writer) bool {
	start := time.Now()
	var failed int
	for _, s := range r.suites {
		var t T
		runSuite(s, &t)
		if len(t.failures) == 0 {
			fmt.Fprintf(w, "%s: ok\n", s.Name)
			continue
		}
		failed++
		fmt.Fprintf(w, "%s: FAILED\n", s.Name)
		for _, f := range t.failures {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
	fmt.Fprintf(w, "%d suites, %d failed, %s\n", len(r.suites), failed,
		time.Since(start).Round(time.Millisecond))
	return failed > 0
}

// runSuite runs s, recording a panic as a failure.
func runSuite(s Suite, t *T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("panic: %v", r)
		}
	}()
	s.Run(t)
}
