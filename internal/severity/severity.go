// Package severity defines the logging severities understood by xbwd and the
// rules for choosing one.
package severity

import (
	"log/slog"
)

// Severity is a logging severity, ordered from most to least verbose.
type Severity int

// All and Trace are the same severity, as are Disabled and None. Both
// spellings are accepted in configuration.
const (
	All Severity = iota
	Debug
	Info
	Warning
	Error
	Fatal
	Disabled

	Trace = All
	None  = Disabled
)

// names is the fixed table of configuration names.
var names = map[string]Severity{
	"All":      All,
	"Trace":    Trace,
	"Debug":    Debug,
	"Info":     Info,
	"Warning":  Warning,
	"Error":    Error,
	"Fatal":    Fatal,
	"Disabled": Disabled,
	"None":     None,
}

// Parse looks up the severity with the given name. Names are case sensitive.
func Parse(name string) (Severity, bool) {
	s, ok := names[name]
	return s, ok
}

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case Trace:
		return "Trace"
	case Debug:
		return "Debug"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Fatal:
		return "Fatal"
	case Disabled:
		return "Disabled"
	default:
		return "Unknown"
	}
}

// LevelTrace and LevelFatal extend the slog levels at either end.
const (
	LevelTrace    = slog.LevelDebug - 4
	LevelFatal    = slog.LevelError + 4
	levelDisabled = slog.Level(1 << 30)
)

// Level returns the minimum slog.Level which is enabled at this severity.
func (s Severity) Level() slog.Level {
	switch {
	case s <= Trace:
		return LevelTrace
	case s == Debug:
		return slog.LevelDebug
	case s == Info:
		return slog.LevelInfo
	case s == Warning:
		return slog.LevelWarn
	case s == Error:
		return slog.LevelError
	case s == Fatal:
		return LevelFatal
	default:
		return levelDisabled
	}
}

// Resolve picks the effective severity. The first matching rule wins:
// quiet, then verbose, then a recognised configured name, then Info.
// Unrecognised configured names are ignored.
func Resolve(quiet, verbose bool, configured string) Severity {
	if quiet {
		return Fatal
	}
	if verbose {
		return Trace
	}
	if configured != "" {
		if s, ok := Parse(configured); ok {
			return s
		}
	}
	return Info
}
