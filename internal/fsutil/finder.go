// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNoExtension is returned when FindFiles is called without extensions.
var ErrNoExtension = errors.New("at least one extension is required")

// FindFiles returns root itself when it is a file, or every file beneath
// root whose extension matches one of exts (case-insensitive, with the
// leading dot). Results come back in lexical order.
func FindFiles(root string, exts ...string) ([]string, error) {
	if len(exts) == 0 {
		return nil, ErrNoExtension
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if path == root || hasExt(path, exts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func hasExt(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
