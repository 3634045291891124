// Released under an MIT license. See LICENSE.

/*
Stein is a small, dynamically typed language with a Lisp-like syntax.

	stein script.st one two
	stein -c '(print (sum (range 10)))'
	stein -L lib:vendor

With no script or command, and a terminal on stdin, stein starts an
interactive session. Libraries are loaded with (import "name").
*/
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/str"
	"github.com/michaelmacinnis/stein/internal/engine"
	"github.com/michaelmacinnis/stein/internal/system/options"
	"github.com/michaelmacinnis/stein/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, in io.Reader, out, errs io.Writer) int {
	opts, err := options.Parse(argv)
	if err != nil {
		fmt.Fprintln(errs, err.Error())

		return 2 //nolint:gomnd
	}

	e, err := engine.New(out, errs, opts.Paths...)
	if err != nil {
		ui.Report(errs, err)

		return 1
	}

	args := list.New()
	for _, a := range opts.Args {
		args.Append(str.New(a))
	}

	err = e.Root().SetConstant("args", args)
	if err != nil {
		ui.Report(errs, err)

		return 1
	}

	if opts.Script != "" {
		e.Loader().AddPath(filepath.Dir(opts.Script))
	}

	if opts.Interactive {
		err = ui.Run(e, out, errs)
		if err != nil {
			fmt.Fprintln(errs, err.Error())

			return 1
		}

		return 0
	}

	name, text, err := source(opts, in)
	if err != nil {
		fmt.Fprintln(errs, err.Error())

		return 1
	}

	_, err = e.Run(text, name)
	if err != nil {
		ui.Report(errs, err)

		return 1
	}

	return 0
}

func source(opts *options.T, in io.Reader) (string, string, error) {
	switch {
	case opts.Command != "":
		return "<command>", opts.Command, nil
	case opts.Script != "":
		b, err := os.ReadFile(opts.Script)

		return opts.Script, string(b), err
	}

	b, err := io.ReadAll(in)

	return "stdin", string(b), err
}
