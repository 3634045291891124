// Released under an MIT license. See LICENSE.

// Package issue provides stein's structured error type.
package issue

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/stein/internal/common/struct/loc"
)

// Kind classifies an issue.
type Kind int

// Issue kinds.
const (
	Syntax Kind = iota + 1
	Unbound
	Arity
	Constant
	Dispatch
	TypeBridge
	Load
	Type
	User
	Control
)

// Sentinels for use with errors.Is.
var (
	ErrSyntax     = errors.New("syntax error")
	ErrUnbound    = errors.New("undefined variable")
	ErrArity      = errors.New("wrong number of arguments")
	ErrConstant   = errors.New("constant redefinition")
	ErrDispatch   = errors.New("does not understand")
	ErrTypeBridge = errors.New("type bridge error")
	ErrLoad       = errors.New("load error")
	ErrType       = errors.New("wrong type")
	ErrUser       = errors.New("error")
	ErrControl    = errors.New("control flow outside of iteration")
)

//nolint:gochecknoglobals
var sentinels = map[Kind]error{
	Syntax:     ErrSyntax,
	Unbound:    ErrUnbound,
	Arity:      ErrArity,
	Constant:   ErrConstant,
	Dispatch:   ErrDispatch,
	TypeBridge: ErrTypeBridge,
	Load:       ErrLoad,
	Type:       ErrType,
	User:       ErrUser,
	Control:    ErrControl,
}

// T (issue) is an error raised by the reader or the evaluator.
type T struct {
	cause  error
	kind   Kind
	msg    string
	source *loc.T
}

type issue = T

// New creates a new issue of kind k at source.
func New(k Kind, source *loc.T, format string, args ...interface{}) *issue {
	return &issue{kind: k, msg: fmt.Sprintf(format, args...), source: source}
}

// Wrap creates a new issue of kind k that wraps the error err.
func Wrap(k Kind, source *loc.T, err error, format string, args ...interface{}) *issue {
	i := New(k, source, format, args...)
	i.cause = err

	return i
}

// Error returns the message for the issue i prefixed by its location, if known.
func (i *issue) Error() string {
	if i.source == nil {
		return i.msg
	}

	return i.source.String() + ": " + i.msg
}

// Is returns true if target is the sentinel for i's kind.
func (i *issue) Is(target error) bool {
	return sentinels[i.kind] == target
}

// Kind returns the issue's kind.
func (i *issue) Kind() Kind {
	return i.kind
}

// Loc returns where the issue was raised, if known.
func (i *issue) Loc() *loc.T {
	return i.source
}

// Message returns the issue's message without its location.
func (i *issue) Message() string {
	return i.msg
}

// Unwrap returns the wrapped error, if any.
func (i *issue) Unwrap() error {
	return i.cause
}

// Locate sets the location for err if err is an issue without one.
func Locate(err error, source *loc.T) error {
	if i, ok := err.(*issue); ok && i.source == nil && source != nil { //nolint:errorlint
		i.source = source
	}

	return err
}
