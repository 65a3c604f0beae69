// SPDX-License-Identifier: EPL-2.0

// Package tempfile hands out scoped temporary files for conversion
// artifacts.
package tempfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

const prefix = "audiofile-"

// Dir creates temporary files below a root directory. An empty root means
// os.TempDir().
type Dir struct {
	root string
}

// New creates files under root, or under os.TempDir when root is empty.
func New(root string) *Dir {
	return &Dir{root: root}
}

// Root is the directory new files are created in.
func (d *Dir) Root() string {
	if d.root == "" {
		return os.TempDir()
	}
	return d.root
}

// Create reserves an empty file named audiofile-<uuid><suffix> and returns
// its path with a release function that removes it. Release is safe to call
// more than once and does not fail when the file is already gone.
func (d *Dir) Create(suffix string) (string, func() error, error) {
	path := filepath.Join(d.Root(), prefix+uuid.NewString()+suffix)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", nil, fmt.Errorf("create temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, fmt.Errorf("close temp file: %w", err)
	}

	release := sync.OnceValue(func() error {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove temp file: %w", err)
		}
		return nil
	})

	return path, release, nil
}
