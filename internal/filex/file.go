// Package filex contains filesystem helpers for scoped temporary artifacts.
// A scoped artifact lives under a per-request directory and is removed on
// every pipeline exit path.
package filex

import (
	"fmt"
	"os"
)

// EnsureDir creates dir (and any missing parents) and returns its path.
// Calling it on an existing directory is a no-op.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// Remove deletes path and everything below it. A missing path is not an
// error, so cleanup is safe to run on every terminal pipeline transition
// regardless of how far the run progressed.
func Remove(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}
