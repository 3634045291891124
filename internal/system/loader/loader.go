// Released under an MIT license. See LICENSE.

// Package loader finds, reads and evaluates stein libraries.
package loader

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/michaelmacinnis/stein/internal/common/interface/callable"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/scope"
	"github.com/michaelmacinnis/stein/internal/common/struct/loc"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/validate"
	"github.com/michaelmacinnis/stein/internal/engine/builtin"
	"github.com/michaelmacinnis/stein/internal/reader"
)

// Extension is added to library names that do not have one.
const Extension = ".st"

type entry struct {
	done    chan struct{}
	err     error
	value   cell.I
	waiting string
}

func (en *entry) loaded() bool {
	select {
	case <-en.done:
		return true
	default:
		return false
	}
}

// T (loader) loads each library at most once.
type T struct {
	sync.Mutex

	entries map[string]*entry
	paths   []string
}

type loader = T

// New creates a loader that searches paths, in order, for libraries.
func New(paths ...string) *loader {
	return &loader{
		entries: map[string]*entry{},
		paths:   append([]string(nil), paths...),
	}
}

// AddPath appends p to the list of search paths.
func (l *loader) AddPath(p string) {
	l.Lock()
	defer l.Unlock()

	l.paths = append(l.paths, p)
}

// Builtin returns the import built-in, which loads a library into the
// scope it is called from.
func (l *loader) Builtin() *builtin.T {
	return builtin.New("import", 1, 1, func(c *builtin.Call) (cell.I, error) {
		name, err := validate.Text(c.Args[0])
		if err != nil {
			return nil, err
		}

		return l.Load(c.Evaluator, name, c.Caller, c.Source)
	})
}

// Load evaluates the library name in s. A library that has already been
// loaded is not evaluated again; the result of the first load is returned.
// A library being loaded by another goroutine is waited for, unless
// waiting would never end because the load depends on the caller.
// Relative names are resolved against the directory of from, if known,
// and then the search paths.
func (l *loader) Load(e callable.Evaluator, name string, s scope.I, from *loc.T) (cell.I, error) {
	path, err := l.Resolve(name, from)
	if err != nil {
		return nil, err
	}

	importer := ""
	if from != nil {
		importer = from.Name
	}

	l.Lock()

	en, ok := l.entries[path]
	if ok {
		if en.loaded() {
			l.Unlock()

			return en.value, en.err
		}

		if l.cycle(path, importer) {
			l.Unlock()

			return nil, issue.New(issue.Load, from, "%s is already being loaded", name)
		}

		l.wait(importer, path)
		l.Unlock()

		<-en.done

		l.Lock()
		l.wait(importer, "")
		l.Unlock()

		return en.value, en.err
	}

	en = &entry{done: make(chan struct{})}
	l.entries[path] = en

	l.wait(importer, path)
	l.Unlock()

	value, err := load(e, path, s)
	if err != nil {
		err = issue.Wrap(issue.Load, from, err, "cannot load %s: %s", name, err.Error())
	}

	l.Lock()
	en.err = err
	en.value = value
	l.wait(importer, "")
	close(en.done)
	l.Unlock()

	return value, err
}

// Loaded returns the paths of every library loaded so far, sorted.
func (l *loader) Loaded() []string {
	l.Lock()
	defer l.Unlock()

	paths := make([]string, 0, len(l.entries))
	for p := range l.entries {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	return paths
}

// Paths returns the search paths.
func (l *loader) Paths() []string {
	l.Lock()
	defer l.Unlock()

	return append([]string(nil), l.paths...)
}

// Resolve returns the absolute path of the library name.
func (l *loader) Resolve(name string, from *loc.T) (string, error) {
	if filepath.Ext(name) == "" {
		name += Extension
	}

	var candidates []string

	if filepath.IsAbs(name) {
		candidates = []string{name}
	} else {
		if from != nil && from.Name != "" {
			candidates = append(candidates, filepath.Join(filepath.Dir(from.Name), name))
		}

		for _, p := range l.Paths() {
			candidates = append(candidates, filepath.Join(p, name))
		}

		candidates = append(candidates, name)
	}

	for _, c := range candidates {
		info, err := os.Stat(c)
		if err != nil || info.IsDir() {
			continue
		}

		abs, err := filepath.Abs(c)
		if err != nil {
			return "", issue.Wrap(issue.Load, from, err, "cannot resolve %s", name)
		}

		return abs, nil
	}

	return "", issue.New(
		issue.Load, from, "cannot find %s in %s", name, strings.Join(candidates, ", "),
	)
}

// SearchPath splits a list of paths separated by the OS path list separator.
func SearchPath(list string) []string {
	var paths []string

	for _, p := range filepath.SplitList(list) {
		if p != "" {
			paths = append(paths, p)
		}
	}

	return paths
}

// cycle returns true if the library at path, or one it is waiting on,
// is waiting on importer. The caller must hold the lock.
func (l *loader) cycle(path, importer string) bool {
	if importer == "" {
		return false
	}

	for p, n := path, 0; p != "" && n <= len(l.entries); n++ {
		if p == importer {
			return true
		}

		en, ok := l.entries[p]
		if !ok || en.loaded() {
			return false
		}

		p = en.waiting
	}

	return false
}

// wait records that the library importer, if it is being loaded, is
// waiting on path. The caller must hold the lock.
func (l *loader) wait(importer, path string) {
	if en, ok := l.entries[importer]; ok && !en.loaded() {
		en.waiting = path
	}
}

func load(e callable.Evaluator, path string, s scope.I) (cell.I, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cs, err := reader.Parse(e.Symbols(), string(text), path)
	if err != nil {
		return nil, err
	}

	return e.EvaluateAll(cs, s)
}
