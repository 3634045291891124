// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed stein code.
package engine

import (
	"fmt"
	"io"
	"slices"

	"github.com/michaelmacinnis/stein/internal/bridge/message"
	"github.com/michaelmacinnis/stein/internal/bridge/native"
	"github.com/michaelmacinnis/stein/internal/bridge/types"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/type/boolean"
	"github.com/michaelmacinnis/stein/internal/common/type/env"
	"github.com/michaelmacinnis/stein/internal/common/type/handle"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/null"
	"github.com/michaelmacinnis/stein/internal/common/type/signal"
	"github.com/michaelmacinnis/stein/internal/common/type/sym"
	"github.com/michaelmacinnis/stein/internal/engine/boot"
	"github.com/michaelmacinnis/stein/internal/engine/builtin"
	"github.com/michaelmacinnis/stein/internal/engine/commands"
	"github.com/michaelmacinnis/stein/internal/engine/eval"
	"github.com/michaelmacinnis/stein/internal/reader"
	"github.com/michaelmacinnis/stein/internal/system/loader"
)

// Module is the label of the root scope.
const Module = "main"

// T (engine) is a facade in front of the machinery for evaluating stein code.
// Engines share nothing mutable and can be used side by side.
type T struct {
	evaluator *eval.T
	loader    *loader.T
	messages  *message.T
	root      *env.T
	symbols   *sym.Table
	types     *types.T
}

// New creates a new engine. Output from print goes to out, output from
// debug goes to errs and libraries are searched for in paths.
func New(out, errs io.Writer, paths ...string) (*T, error) {
	e := &T{
		loader:   loader.New(paths...),
		messages: message.New(),
		root:     env.NewModule(Module, nil),
		symbols:  sym.NewTable(),
		types:    types.New(),
	}

	e.evaluator = eval.New(e.root, e.symbols, e.messages)

	err := e.install(out, errs)
	if err != nil {
		return nil, err
	}

	_, err = e.Run(boot.Script(), boot.Name)
	if err != nil {
		return nil, err
	}

	return e, nil
}

// Bind makes value visible to stein code as the constant name. Values
// that are not cells are wrapped in an opaque handle.
func (e *T) Bind(name string, value any) error {
	c, ok := value.(cell.I)
	if !ok {
		c = handle.New(fmt.Sprintf("%T", value), value)
	}

	return e.root.SetConstant(name, c)
}

// Evaluate evaluates c in the root scope. A break or continue that is
// not caught by an iteration is reported as an error.
func (e *T) Evaluate(c cell.I) (cell.I, error) {
	v, err := e.evaluator.Evaluate(c, e.root)
	if err == nil {
		return v, nil
	}

	if s, ok := signal.As(err); ok {
		return nil, issue.Wrap(issue.Control, s.Loc(), err, "%s outside of iteration", kind(s))
	}

	return nil, err
}

// Load loads the library name into the root scope.
func (e *T) Load(name string) (cell.I, error) {
	return e.loader.Load(e.evaluator, name, e.root, nil)
}

// Loader returns the engine's library loader.
func (e *T) Loader() *loader.T {
	return e.loader
}

// Messages returns the engine's message bridge.
func (e *T) Messages() *message.T {
	return e.messages
}

// Names returns, in order, the names visible in the root scope.
func (e *T) Names() []string {
	var names []string

	for k := range e.root.Enumerate() {
		names = append(names, k)
	}

	slices.Sort(names)

	return names
}

// Parse reads the expressions in text. The name is used in locations.
func (e *T) Parse(text, name string) ([]cell.I, error) {
	return reader.Parse(e.symbols, text, name)
}

// Reader returns an incremental reader that shares the engine's symbols.
func (e *T) Reader(name string) *reader.T {
	return reader.New(e.symbols, name)
}

// Root returns the root scope.
func (e *T) Root() *env.T {
	return e.root
}

// Run parses and evaluates text and returns the value of the last expression.
func (e *T) Run(text, name string) (cell.I, error) {
	cs, err := e.Parse(text, name)
	if err != nil {
		return nil, err
	}

	var v cell.I = null.Null

	for _, c := range cs {
		v, err = e.Evaluate(c)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Symbols returns the engine's symbol table.
func (e *T) Symbols() *sym.Table {
	return e.symbols
}

// Types returns the engine's type bridge.
func (e *T) Types() *types.T {
	return e.types
}

func (e *T) install(out, errs io.Writer) error {
	constants := map[string]cell.I{
		"false": boolean.False,
		"null":  null.Null,
		"true":  boolean.True,
	}

	for _, table := range []map[string]*builtin.T{
		commands.Syntax(),
		commands.Functions(out, errs),
		e.types.Functions(),
	} {
		for k, v := range table {
			constants[k] = v
		}
	}

	constants["import"] = e.loader.Builtin()

	math, err := native.Math(e.types)
	if err != nil {
		return err
	}

	for k, v := range math {
		constants[k] = v
	}

	for k, v := range constants {
		err := e.root.SetConstant(k, v)
		if err != nil {
			return err
		}
	}

	return e.messages.Install(e.root)
}

func kind(s *signal.T) string {
	if s.Kind() == signal.Break {
		return "break"
	}

	return "continue"
}
