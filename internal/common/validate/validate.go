// Released under an MIT license. See LICENSE.

// Package validate checks argument counts.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/stein/internal/common/type/issue"
)

// Variadic is passed as max when there is no upper bound.
const Variadic = -1

// Arity returns an error if n is not between min and max, inclusive.
func Arity(label string, n, min, max int) error {
	if n < min {
		if min == max {
			return arity(label, "expected %s, passed %d", Count(min, "argument", "s"), n)
		}

		return arity(label, "expected at least %s, passed %d", Count(min, "argument", "s"), n)
	}

	if max != Variadic && n > max {
		if min == max {
			return arity(label, "expected %s, passed %d", Count(max, "argument", "s"), n)
		}

		return arity(label, "expected at most %s, passed %d", Count(max, "argument", "s"), n)
	}

	return nil
}

// Count returns n and label, adding the plural suffix p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

func arity(label, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if label != "" {
		msg = label + ": " + msg
	}

	return issue.New(issue.Arity, nil, "%s", msg)
}
