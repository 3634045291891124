// Released under an MIT license. See LICENSE.

// Package options parses stein's command-line arguments.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/michaelmacinnis/stein/internal/system/loader"
)

// Version is printed by stein -v.
const Version = "stein 0.1.0"

// T (options) holds the parsed command line.
type T struct {
	Args        []string
	Command     string
	Interactive bool
	Paths       []string
	Script      string
}

type options = T

const usage = `stein

Usage:
  stein [-L PATHS] SCRIPT [ARGUMENTS...]
  stein [-L PATHS] -c COMMAND [ARGUMENTS...]
  stein [-i] [-L PATHS]
  stein -h
  stein -v

Arguments:
  ARGUMENTS  Values bound, as strings, to args.
  SCRIPT     Path to a stein script.

Options:
  -c, --command=COMMAND  Evaluate the specified command.
  -L, --library=PATHS    Colon-separated library search paths.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.
  -v, --version          Print stein version.

If stein's stdin is a TTY and stein was invoked with no script or command,
interactive mode is enabled. Otherwise, it is disabled. Library search
paths listed in STEIN_PATH are searched after those given with -L.
`

// Parse parses argv, which does not include the program name.
func Parse(argv []string) (*options, error) {
	opts, err := docopt.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	o := &options{}

	o.Command, _ = opts.String("--command")
	o.Script, _ = opts.String("SCRIPT")

	if o.Script == "" && o.Command == "" {
		o.Interactive = isatty.IsTerminal(os.Stdin.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	invert, _ := opts.Bool("--interactive")
	o.Interactive = o.Interactive != invert

	o.Args, _ = opts["ARGUMENTS"].([]string)

	paths, _ := opts.String("--library")
	o.Paths = append(loader.SearchPath(paths), loader.SearchPath(os.Getenv("STEIN_PATH"))...)

	return o, nil
}
