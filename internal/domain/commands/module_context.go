package commands

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
	"github.com/rios0rios0/gomoddrift/internal/gitinfo"
	"github.com/rios0rios0/gomoddrift/internal/gomod"
)

// ensureGoModCache returns settings with a usable module cache directory.
// When none is configured, a throwaway cache is created and the returned
// cleanup removes it; otherwise the cleanup is a no-op.
func ensureGoModCache(settings *entities.Settings) (*entities.Settings, func(), error) {
	if settings.GoModCache != "" {
		return settings, func() {}, nil
	}

	tmpDir, err := os.MkdirTemp("", "gomoddrift-gomodcache-")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create temporary module cache: %w", err)
	}

	scoped := *settings
	scoped.GoModCache = tmpDir

	return &scoped, func() {
		if removeErr := os.RemoveAll(tmpDir); removeErr != nil {
			logger.Warnf("Failed to remove temporary module cache %s: %v", tmpDir, removeErr)
		}
	}, nil
}

// logModuleContext announces which module is being inspected and, when the
// module lives in a git work tree, the revision the reports describe.
func logModuleContext(settings *entities.Settings) {
	if modulePath, err := gomod.ModulePath(settings.ModuleDir); err == nil {
		logger.Infof("Inspecting module %s", modulePath)
	} else {
		logger.Debugf("Could not read module path: %v", err)
	}

	if revision, err := gitinfo.HeadRevision(settings.ModuleDir); err == nil {
		logger.Infof("Module work tree at revision %s", revision)
	} else {
		logger.Debugf("No git provenance available: %v", err)
	}
}
