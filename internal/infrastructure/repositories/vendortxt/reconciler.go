package vendortxt

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindVendorDirs returns the set of module-sized directories physically
// present under vendorRoot, sorted: every known module path that exists,
// plus every undeclared subtree that plausibly holds a vendored module.
// Comparing the result against knownModulePaths exposes stray content no
// other source can see.
func FindVendorDirs(knownModulePaths []string, vendorRoot string) ([]string, error) {
	found := make(map[string]struct{})

	for _, known := range knownModulePaths {
		if _, err := os.Stat(filepath.Join(vendorRoot, filepath.FromSlash(known))); err == nil {
			found[known] = struct{}{}
		}
	}

	entries, err := os.ReadDir(vendorRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to read vendor directory %q: %w", vendorRoot, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if walkErr := findUnknownDirs(
			vendorRoot, filepath.Join(vendorRoot, entry.Name()), knownModulePaths, found,
		); walkErr != nil {
			return nil, walkErr
		}
	}

	dirs := make([]string, 0, len(found))
	for dir := range found {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs, nil
}

// findUnknownDirs classifies one subtree, depth first. A directory covered
// by a known module path is already accounted for. A directory directly
// containing a regular file is a terminal unknown module directory. A
// directory holding only directories is recursed into.
func findUnknownDirs(
	vendorRoot, dir string,
	knownModulePaths []string,
	found map[string]struct{},
) error {
	rel, err := filepath.Rel(vendorRoot, dir)
	if err != nil {
		return err
	}
	rel = filepath.ToSlash(rel)

	if coveredByKnown(rel, knownModulePaths) {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read vendor subdirectory %q: %w", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			found[rel] = struct{}{}
			return nil
		}
	}

	for _, entry := range entries {
		if walkErr := findUnknownDirs(
			vendorRoot, filepath.Join(dir, entry.Name()), knownModulePaths, found,
		); walkErr != nil {
			return walkErr
		}
	}
	return nil
}

// coveredByKnown reports whether rel equals, or is a descendant of, any
// known module path.
func coveredByKnown(rel string, knownModulePaths []string) bool {
	for _, known := range knownModulePaths {
		if rel == known || strings.HasPrefix(rel, known+"/") {
			return true
		}
	}
	return false
}
