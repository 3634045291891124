// Released under an MIT license. See LICENSE.

package options

import (
	"path/filepath"
	"slices"
	"testing"
)

func TestCommand(t *testing.T) {
	t.Setenv("STEIN_PATH", "")

	o, err := Parse([]string{"-c", "(print 1)", "x"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if o.Command != "(print 1)" || o.Script != "" || o.Interactive {
		t.Fatalf("Unexpected options %+v", o)
	}

	if !slices.Equal(o.Args, []string{"x"}) {
		t.Fatalf("Unexpected arguments %v", o.Args)
	}
}

func TestPaths(t *testing.T) {
	sep := string(filepath.ListSeparator)

	t.Setenv("STEIN_PATH", "c")

	o, err := Parse([]string{"-L", "a" + sep + "b", "main.st"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !slices.Equal(o.Paths, []string{"a", "b", "c"}) {
		t.Fatalf("Unexpected paths %v", o.Paths)
	}
}

func TestScript(t *testing.T) {
	t.Setenv("STEIN_PATH", "")

	o, err := Parse([]string{"main.st", "one", "two"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if o.Script != "main.st" || o.Interactive {
		t.Fatalf("Unexpected options %+v", o)
	}

	if !slices.Equal(o.Args, []string{"one", "two"}) {
		t.Fatalf("Unexpected arguments %v", o.Args)
	}

	if len(o.Paths) != 0 {
		t.Fatalf("Expected no search paths; got %v", o.Paths)
	}
}
