// Released under an MIT license. See LICENSE.

// Package history keeps the lines entered in interactive sessions.
package history

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Variable names the environment variable that overrides the history file.
const Variable = "STEIN_HISTORY"

// Load passes the history file to read. A missing file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}

	_, err = read(f)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

// Path returns the location of the history file.
func Path() (string, error) {
	if p := os.Getenv(Variable); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".stein_history"), nil
}

// Save passes a freshly truncated history file to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	p, err := Path()
	if err != nil {
		return nil, err
	}

	return op(p)
}
