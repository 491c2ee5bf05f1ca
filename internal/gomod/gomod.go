// Package gomod reads metadata from a module's go.mod file.
package gomod

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ModulePath returns the module path declared in the go.mod of the given
// directory. It fails when the directory is not the root of a Go module.
func ModulePath(moduleDir string) (string, error) {
	gomodPath := filepath.Join(moduleDir, "go.mod")

	data, err := os.ReadFile(gomodPath)
	if err != nil {
		return "", fmt.Errorf("not a Go module (no go.mod in %s): %w", moduleDir, err)
	}

	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("no module declaration found in %s", gomodPath)
	}
	return path, nil
}
