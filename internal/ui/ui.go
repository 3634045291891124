// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the stein language.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/type/trace"
	"github.com/michaelmacinnis/stein/internal/reader"
	"github.com/michaelmacinnis/stein/internal/system/history"
	"github.com/peterh/liner"
)

const (
	continuation = "> "
	prompt       = "stein> "
)

// Engine is the interface for things that evaluate parsed expressions.
type Engine interface {
	Evaluate(c cell.I) (cell.I, error)
	Names() []string
	Reader(name string) *reader.T
}

// Run reads, evaluates and prints until end of input.
func Run(e Engine, out, errs io.Writer) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(e))

	err := history.Load(cli.ReadHistory)
	if err != nil {
		fmt.Fprintln(errs, "history:", err)
	}

	defer func() {
		err := history.Save(cli.WriteHistory)
		if err != nil {
			fmt.Fprintln(errs, "history:", err)
		}
	}()

	r := e.Reader("stdin")

	for {
		p := prompt
		if r.Incomplete() {
			p = continuation
		}

		line, err := cli.Prompt(p)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				r.Reset()

				continue
			}

			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)

				return nil
			}

			return err
		}

		if line != "" {
			cli.AppendHistory(line)
		}

		cs, err := r.Scan(line + "\n")
		if err != nil {
			Report(errs, err)

			continue
		}

		for _, c := range cs {
			v, err := e.Evaluate(c)
			if err != nil {
				Report(errs, err)

				break
			}

			fmt.Fprintln(out, literal.String(v))
		}
	}
}

// completer offers the names bound in the root scope that start with
// the word under the cursor.
func completer(e Engine) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		rs := []rune(line)
		head, tail := string(rs[:pos]), string(rs[pos:])

		start := strings.LastIndexAny(head, " \t()[]'") + 1
		word := head[start:]

		var names []string

		for _, n := range e.Names() {
			if strings.HasPrefix(n, word) {
				names = append(names, n)
			}
		}

		return head[:start], names, tail
	}
}

// Report writes err, and the expressions it unwound through, to w.
func Report(w io.Writer, err error) {
	fmt.Fprintln(w, "error:", trace.Format(err))
}
