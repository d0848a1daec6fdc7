// Package logging builds the structured logger used by xbwd.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/xbridge-witness/xbwd/internal/config"
	"github.com/xbridge-witness/xbwd/internal/severity"
	"gopkg.in/natefinch/lumberjack.v2"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a JSON logger which logs at the given severity to stderr and, if
// configured, to a rotating log file. If cfg.LogSilent is set the logger does
// not write to stderr. The returned io.Closer releases the log file and should
// be deferred by the caller.
func New(cfg *config.Config, sev severity.Severity) (*slog.Logger, io.Closer, error) {
	var writers []io.Writer
	var closer io.Closer = nopCloser{}
	if !cfg.LogSilent {
		writers = append(writers, os.Stderr)
	}
	if cfg.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogSizeToRotateMb,
			MaxBackups: cfg.LogFilesToKeep,
		}
		writers = append(writers, lj)
		closer = lj
	}
	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}
	return NewWithWriter(w, sev), closer, nil
}

// NewWithWriter returns a JSON logger writing to w at the given severity.
func NewWithWriter(w io.Writer, sev severity.Severity) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       sev.Level(),
		ReplaceAttr: replaceLevel,
	}))
}

// replaceLevel names the levels which slog doesn't know about.
func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	level, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	switch {
	case level <= severity.LevelTrace:
		a.Value = slog.StringValue("TRACE")
	case level >= severity.LevelFatal:
		a.Value = slog.StringValue("FATAL")
	}
	return a
}
