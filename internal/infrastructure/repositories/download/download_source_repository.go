// Package download reads module records from `go mod download -json`.
package download

import (
	"context"
	"fmt"

	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
	domainRepos "github.com/rios0rios0/gomoddrift/internal/domain/repositories"
	"github.com/rios0rios0/gomoddrift/internal/jsonstream"
)

// SourceRepository resolves the module set declared by the download command.
type SourceRepository struct {
	tool domainRepos.GoToolRepository
}

// NewSourceRepository creates a download source backed by the given go tool.
func NewSourceRepository(tool domainRepos.GoToolRepository) *SourceRepository {
	return &SourceRepository{tool: tool}
}

// Name returns the source identifier.
func (it *SourceRepository) Name() string {
	return "download"
}

// Modules downloads every dependency and parses the emitted JSON stream.
func (it *SourceRepository) Modules(
	ctx context.Context,
	settings *entities.Settings,
) ([]entities.Module, error) {
	output, err := it.tool.Run(ctx, settings, "mod", "download", "-json")
	if err != nil {
		return nil, err
	}

	modules, err := jsonstream.DecodeString[entities.Module](output)
	if err != nil {
		return nil, fmt.Errorf("failed to parse download output: %w", err)
	}
	return modules, nil
}
