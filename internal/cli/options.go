// Package cli implements the xbwd command line: argument parsing and the
// decision between running the server, running self-tests, and sending a
// single admin request to a running server.
package cli

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/xbridge-witness/xbwd/internal/buildinfo"
)

const description = "XRPL sidechain bridge witness server.\n\n" +
	"Runs the witness server, or sends a single admin request to a running " +
	"server when a command or --json is given."

const commandsHelp = `
Commands:
     server_info      Server state info.
     stop             Server stop.
`

// Options represents the command-line interface.
type Options struct {
	Help     bool    `kong:"short='h',help='Display this message.'"`
	Conf     *string `kong:"placeholder='PATH',help='Specify the config file.'"`
	JSON     *string `kong:"name='json',placeholder='REQUEST',help='Handle the provided json request.'"`
	Quiet    bool    `kong:"short='q',help='Only log fatal messages.'"`
	Silent   bool    `kong:"help='Log to file only.'"`
	Verbose  bool    `kong:"short='v',help='Log everything.'"`
	Unittest bool    `kong:"short='u',help='Perform unit tests.'"`
	Version  bool    `kong:"help='Display the build version.'"`
	Cmd      *string `kong:"arg,optional,help='Command to send to a running server.'"`
}

func newParser(opts *Options, w io.Writer) (*kong.Kong, error) {
	return kong.New(opts,
		kong.Name(buildinfo.ServerName),
		kong.Description(description),
		// help is handled by the dispatcher, after unittest and version
		kong.NoDefaultHelp(),
		kong.Writers(w, w),
		kong.Exit(func(int) {}),
	)
}

// Parse parses the given command-line arguments, which exclude the program
// name.
func Parse(args []string) (*Options, error) {
	var opts Options
	parser, err := newParser(&opts, io.Discard)
	if err != nil {
		return nil, fmt.Errorf("couldn't construct parser: %v", err)
	}
	if _, err = parser.Parse(args); err != nil {
		return nil, err
	}
	return &opts, nil
}

// PrintHelp writes the usage message to w.
func PrintHelp(w io.Writer) error {
	var opts Options
	parser, err := newParser(&opts, w)
	if err != nil {
		return fmt.Errorf("couldn't construct parser: %v", err)
	}
	kctx, err := parser.Parse(nil)
	if err != nil {
		return fmt.Errorf("couldn't construct help: %v", err)
	}
	if err = kctx.PrintUsage(false); err != nil {
		return fmt.Errorf("couldn't print help: %v", err)
	}
	_, err = fmt.Fprint(w, commandsHelp)
	return err
}

// PrintUsageError writes the message shown for an invalid command line to w.
func PrintUsageError(w io.Writer) {
	fmt.Fprintf(w, "%s: Incorrect command line syntax.\n", buildinfo.ServerName)
	fmt.Fprintln(w, "Use '--help' for a list of options.")
}
