// Released under an MIT license. See LICENSE.

package history

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func TestMissingFile(t *testing.T) {
	t.Setenv(Variable, filepath.Join(t.TempDir(), "missing"))

	called := false

	err := Load(func(io.Reader) (int, error) {
		called = true

		return 0, nil
	})
	if err != nil || called {
		t.Fatalf("Expected a missing file to be skipped; got %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv(Variable, filepath.Join(t.TempDir(), "history"))

	err := Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, "(+ 1 2)\n")
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var b strings.Builder

	err = Load(func(r io.Reader) (int, error) {
		n, err := io.Copy(&b, r)

		return int(n), err
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if b.String() != "(+ 1 2)\n" {
		t.Fatalf("Unexpected history %q", b.String())
	}
}

func TestPath(t *testing.T) {
	t.Setenv(Variable, "/tmp/h")

	p, err := Path()
	if err != nil || p != "/tmp/h" {
		t.Fatalf("Expected the override; got %q, %v", p, err)
	}
}
