package cli

//go:generate go tool enumer -type=Action

// Action is what an invocation of xbwd does. Exactly one Action is taken per
// invocation.
type Action int

// Actions in priority order. The first applicable action is taken.
const (
	RunTests Action = iota
	ShowVersion
	ShowHelp
	RunRPC
	RunService
)

// Resolve returns the Action selected by the given options.
func Resolve(opts *Options) Action {
	switch {
	case opts.Unittest:
		return RunTests
	case opts.Version:
		return ShowVersion
	case opts.Help:
		return ShowHelp
	case opts.JSON != nil || opts.Cmd != nil:
		return RunRPC
	default:
		return RunService
	}
}
