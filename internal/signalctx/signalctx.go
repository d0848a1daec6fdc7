// Package signalctx provides a process context which is cancelled by
// termination signals.
package signalctx

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// exitCode returns the conventional shell exit code for a process killed by
// sig. See https://tldp.org/LDP/abs/html/exitcodes.html
func exitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}

// GetContext starts a goroutine which cancels the returned context on SIGINT
// or SIGTERM so that the server can shut down gracefully. A second signal
// exits the process immediately. The returned function cleans up the signal
// handling and ensures the goroutine exits; it should be deferred by the
// caller.
func GetContext() (context.Context, func()) {
	return getContext(os.Exit)
}

func getContext(exit func(int)) (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		select {
		case <-signalChan:
			cancel()
		case <-done:
			return
		}
		select {
		case sig := <-signalChan:
			exit(exitCode(sig))
		case <-done:
		}
	}()
	return ctx, func() {
		signal.Stop(signalChan)
		close(done)
		cancel()
	}
}
