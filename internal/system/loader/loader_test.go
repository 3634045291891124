// Released under an MIT license. See LICENSE.

package loader

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/type/env"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/num"
	"github.com/michaelmacinnis/stein/internal/common/type/str"
	"github.com/michaelmacinnis/stein/internal/common/type/sym"
	"github.com/michaelmacinnis/stein/internal/engine/builtin"
	"github.com/michaelmacinnis/stein/internal/engine/eval"
)

type harness struct {
	count  int
	dir    string
	eval   *eval.T
	loader *T
	root   *env.T
	t      *testing.T
}

func setup(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		dir:  t.TempDir(),
		root: env.New(nil),
		t:    t,
	}

	h.eval = eval.New(h.root, sym.NewTable(), nil)
	h.loader = New(h.dir)

	_ = h.root.SetConstant("count", builtin.New("count", 0, 0, func(_ *builtin.Call) (cell.I, error) {
		h.count++

		return num.Int(h.count), nil
	}))

	_ = h.root.SetConstant("import", h.loader.Builtin())

	return h
}

func (h *harness) write(name, text string) string {
	h.t.Helper()

	path := filepath.Join(h.dir, name)

	err := os.WriteFile(path, []byte(text), 0o600)
	if err != nil {
		h.t.Fatalf("Writing %s failed: %v", path, err)
	}

	return path
}

func TestLoadOnce(t *testing.T) {
	h := setup(t)

	h.write("counter.st", "(count)\n")

	for range 3 {
		v, err := h.loader.Load(h.eval, "counter", h.root, nil)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if !v.Equal(num.Int(1)) {
			t.Fatalf("Expected the first result; got %v", v)
		}
	}

	if h.count != 1 {
		t.Fatalf("Expected the library to be evaluated once; it was evaluated %d times", h.count)
	}

	if n := len(h.loader.Loaded()); n != 1 {
		t.Fatalf("Expected 1 loaded library; got %d", n)
	}
}

func TestImport(t *testing.T) {
	h := setup(t)

	h.write("inner.st", "(count)\n")
	h.write("outer.st", "(import \"inner\")\n(import \"inner.st\")\n")

	_, err := h.loader.Load(h.eval, "outer.st", h.root, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if h.count != 1 {
		t.Fatalf("Expected inner to be evaluated once; it was evaluated %d times", h.count)
	}
}

func TestCircular(t *testing.T) {
	h := setup(t)

	h.write("a.st", "(import \"b\")\n")
	h.write("b.st", "(import \"a\")\n")

	_, err := h.loader.Load(h.eval, "a", h.root, nil)
	if !errors.Is(err, issue.ErrLoad) {
		t.Fatalf("Expected a load error; got %v", err)
	}
}

func TestImportRelativeToLibrary(t *testing.T) {
	h := setup(t)

	err := os.Mkdir(filepath.Join(h.dir, "sub"), 0o700)
	if err != nil {
		t.Fatalf("Creating a directory failed: %v", err)
	}

	h.write(filepath.Join("sub", "one.st"), "(import \"two\")\n")
	h.write(filepath.Join("sub", "two.st"), "'two\n")

	v, err := h.loader.Load(h.eval, filepath.Join("sub", "one"), h.root, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if v.String() != "two" {
		t.Fatalf("Expected two; got %v", v)
	}
}

func TestConcurrentLoad(t *testing.T) {
	h := setup(t)

	h.write("shared.st", "(count)\n")

	const workers = 8

	var wg sync.WaitGroup

	values := make([]cell.I, workers)
	errs := make([]error, workers)

	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			values[i], errs[i] = h.loader.Load(h.eval, "shared", h.root, nil)
		}()
	}

	wg.Wait()

	for i := range workers {
		if errs[i] != nil {
			t.Fatalf("Load failed: %v", errs[i])
		}

		if !values[i].Equal(num.Int(1)) {
			t.Fatalf("Expected the first result; got %v", values[i])
		}
	}

	if h.count != 1 {
		t.Fatalf("Expected the library to be evaluated once; it was evaluated %d times", h.count)
	}
}

func TestMissing(t *testing.T) {
	h := setup(t)

	_, err := h.loader.Load(h.eval, "missing", h.root, nil)
	if !errors.Is(err, issue.ErrLoad) {
		t.Fatalf("Expected a load error; got %v", err)
	}
}

func TestFailureIsRemembered(t *testing.T) {
	h := setup(t)

	h.write("broken.st", "(count)\n(undefined)\n")

	for range 2 {
		_, err := h.loader.Load(h.eval, "broken", h.root, nil)
		if !errors.Is(err, issue.ErrLoad) || !errors.Is(err, issue.ErrUnbound) {
			t.Fatalf("Expected a load error caused by an unbound name; got %v", err)
		}
	}

	if h.count != 1 {
		t.Fatalf("Expected one attempt to load; got %d", h.count)
	}
}

func TestResolve(t *testing.T) {
	h := setup(t)

	sub := filepath.Join(h.dir, "sub")

	err := os.Mkdir(sub, 0o700)
	if err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	h.write(filepath.Join("sub", "lib.st"), "'lib\n")

	_, err = h.loader.Resolve("lib", nil)
	if !errors.Is(err, issue.ErrLoad) {
		t.Fatalf("Expected lib not to be found; got %v", err)
	}

	h.loader.AddPath(sub)

	path, err := h.loader.Resolve("lib", nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if filepath.Base(path) != "lib.st" || !filepath.IsAbs(path) {
		t.Fatalf("Unexpected path %s", path)
	}
}

func TestSearchPath(t *testing.T) {
	sep := string(filepath.ListSeparator)

	paths := SearchPath("a" + sep + sep + "b")
	if len(paths) != 2 || paths[0] != "a" || paths[1] != "b" {
		t.Fatalf("Expected [a b]; got %v", paths)
	}
}

func TestBuiltin(t *testing.T) {
	h := setup(t)

	h.write("value.st", "\"loaded\"\n")

	v, err := h.loader.Builtin().Apply(h.eval, list.New(str.New("value")), h.root)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if !v.Equal(str.New("loaded")) {
		t.Fatalf("Expected \"loaded\"; got %v", v)
	}
}
