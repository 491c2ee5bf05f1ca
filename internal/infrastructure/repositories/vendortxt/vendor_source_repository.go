// Package vendortxt parses vendor/modules.txt and reconciles it against the
// physical vendor tree.
package vendortxt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
)

// ManifestName is the vendor ledger file maintained by the go tool.
const ManifestName = "modules.txt"

// SourceRepository resolves the module set declared in the vendor manifest.
type SourceRepository struct{}

// NewSourceRepository creates a vendor manifest source.
func NewSourceRepository() *SourceRepository {
	return &SourceRepository{}
}

// Name returns the source identifier.
func (it *SourceRepository) Name() string {
	return "vendor"
}

// Modules parses the manifest and applies the configured dropUnused filter.
func (it *SourceRepository) Modules(
	_ context.Context,
	settings *entities.Settings,
) ([]entities.Module, error) {
	entries, err := it.Entries(settings)
	if err != nil {
		return nil, err
	}
	return FilterModules(entries, settings.DropUnused), nil
}

// Entries parses every manifest header, leaving filtering to the caller.
func (it *SourceRepository) Entries(settings *entities.Settings) ([]ManifestEntry, error) {
	manifestPath := filepath.Join(settings.ModuleDir, "vendor", ManifestName)

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vendor manifest %q: %w", manifestPath, err)
	}

	entries, parseErr := ParseManifest(string(data))
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", manifestPath, parseErr)
	}
	return entries, nil
}
