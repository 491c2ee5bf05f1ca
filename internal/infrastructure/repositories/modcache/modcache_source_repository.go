// Package modcache re-derives module identities from the physical layout of
// the module cache (https://go.dev/ref/mod#module-cache).
package modcache

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
)

const zipSuffix = ".zip"

// SourceRepository walks the cache's download tree. Every entry ends in a
// version-tagged archive two levels below the escaped module path:
// <escaped module>/@v/<escaped version>.zip.
type SourceRepository struct{}

// NewSourceRepository creates a module cache source.
func NewSourceRepository() *SourceRepository {
	return &SourceRepository{}
}

// Name returns the source identifier.
func (it *SourceRepository) Name() string {
	return "gomodcache"
}

// Modules reconstructs a module record from every archive found under the
// cache's download root.
func (it *SourceRepository) Modules(
	_ context.Context,
	settings *entities.Settings,
) ([]entities.Module, error) {
	downloadRoot := filepath.Join(settings.GoModCache, "cache", "download")

	var modules []entities.Module
	walkErr := filepath.WalkDir(downloadRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), zipSuffix) {
			return nil
		}

		rel, relErr := filepath.Rel(downloadRoot, path)
		if relErr != nil {
			return relErr
		}

		module := moduleFromArchivePath(rel)
		modules = append(modules, module)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk module cache %q: %w", downloadRoot, walkErr)
	}

	return modules, nil
}

// moduleFromArchivePath decodes <escaped module>/@v/<version>.zip (relative
// to the download root) into a module record. The archive sits inside the
// "@v" directory, so the module path is the parent of the parent.
func moduleFromArchivePath(rel string) entities.Module {
	rel = filepath.ToSlash(rel)

	name := path.Dir(path.Dir(rel))
	version := strings.TrimSuffix(path.Base(rel), zipSuffix)

	decoded := entities.Module{
		Path:    Unescape(name),
		Version: Unescape(version),
	}

	if !semver.IsValid(decoded.Version) {
		logger.Debugf("Non-semver version %q in module cache entry %s", decoded.Version, rel)
	}
	return decoded
}
