// Released under an MIT license. See LICENSE.

// Package commands provides stein's built-in functions.
package commands

import (
	"io"

	"github.com/michaelmacinnis/stein/internal/engine/builtin"
)

const variadic = builtin.Variadic

// Functions returns the built-ins that receive evaluated arguments.
// Output from print goes to out. Output from debug goes to errs.
func Functions(out, errs io.Writer) map[string]*builtin.T {
	return table(
		builtin.New("!=", 2, 2, notEqual),
		builtin.New("%", 2, 2, mod),
		builtin.New("*", 0, variadic, mul),
		builtin.New("+", 0, variadic, add),
		builtin.New("-", 1, variadic, sub),
		builtin.New("/", 1, variadic, div),
		builtin.New("<", 2, variadic, lt),
		builtin.New("<=", 2, variadic, le),
		builtin.New("=", 2, 2, equal),
		builtin.New(">", 2, variadic, gt),
		builtin.New(">=", 2, variadic, ge),
		builtin.New("append", 1, variadic, appendList),
		builtin.New("apply", 2, 2, apply),
		builtin.New("bindings", 0, 0, bindings),
		builtin.New("break", 0, 0, breakLoop),
		builtin.New("concat", 0, variadic, concat),
		builtin.New("continue", 0, 0, continueLoop),
		builtin.New("debug", 0, variadic, debug(errs)),
		builtin.New("eval", 1, 1, eval),
		builtin.New("filter", 2, 2, filter),
		builtin.New("foreach", 2, 2, foreach),
		builtin.New("gensym", 0, 1, gensym),
		builtin.New("length", 1, 1, length),
		builtin.New("like", 2, 2, like),
		builtin.New("list", 0, variadic, makeList),
		builtin.New("map", 2, 2, mapList),
		builtin.New("not", 1, 1, not),
		builtin.New("nth", 2, 2, nth),
		builtin.New("parse", 1, 1, parse),
		builtin.New("print", 0, variadic, printer(out)),
		builtin.New("range", 1, 3, makeRange),
		builtin.New("send", 2, variadic, send),
		builtin.New("str", 1, 1, toStr),
		builtin.New("throw", 1, 1, throw),
		builtin.New("try", 2, 2, try),
		builtin.New("type-of", 1, 1, typeOf),
	)
}

// Syntax returns the built-ins that receive their arguments unevaluated.
func Syntax() map[string]*builtin.T {
	return table(
		builtin.Syntax("and", 0, variadic, and),
		builtin.Syntax("const", 2, 3, constant),
		builtin.Syntax("defined", 1, 1, defined),
		builtin.Syntax("func", 1, variadic, function),
		builtin.Syntax("if", 2, 4, conditional),
		builtin.Syntax("let", 2, 3, let),
		builtin.Syntax("match", 1, variadic, match),
		builtin.Syntax("or", 0, variadic, or),
		builtin.Syntax("quote", 1, 1, quote),
		builtin.Syntax("set", 2, 3, set),
		builtin.Syntax("super", 1, variadic, super),
		builtin.Syntax("unset", 1, 1, unset),
		builtin.Syntax("while", 1, variadic, while),
	)
}

func table(bs ...*builtin.T) map[string]*builtin.T {
	m := make(map[string]*builtin.T, len(bs))

	for _, b := range bs {
		m[b.Label()] = b
	}

	return m
}
