// Package listdeps reads package records from `go list -deps -json`.
package listdeps

import (
	"context"
	"fmt"

	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
	domainRepos "github.com/rios0rios0/gomoddrift/internal/domain/repositories"
	"github.com/rios0rios0/gomoddrift/internal/jsonstream"
)

const (
	// PatternAll lists the packages of the module and its whole dependency
	// graph, including test dependencies of dependencies.
	PatternAll = "all"
	// PatternThreeDot lists only the packages reachable from the module's
	// own packages.
	PatternThreeDot = "./..."
)

// jsonFields keeps the tool output limited to what the parser consumes.
const jsonFields = "-json=ImportPath,Module,Standard,Deps"

// SourceRepository resolves the module set owning the listed packages.
// Two instances are registered, one per pattern.
type SourceRepository struct {
	tool    domainRepos.GoToolRepository
	pattern string
	name    string
}

// NewAllSourceRepository creates a listdeps source over the "all" pattern.
func NewAllSourceRepository(tool domainRepos.GoToolRepository) *SourceRepository {
	return &SourceRepository{tool: tool, pattern: PatternAll, name: "listdeps-all"}
}

// NewThreeDotSourceRepository creates a listdeps source over the "./..." pattern.
func NewThreeDotSourceRepository(tool domainRepos.GoToolRepository) *SourceRepository {
	return &SourceRepository{tool: tool, pattern: PatternThreeDot, name: "listdeps-threedot"}
}

// Name returns the source identifier.
func (it *SourceRepository) Name() string {
	return it.name
}

// Packages lists every package matching the configured pattern.
func (it *SourceRepository) Packages(
	ctx context.Context,
	settings *entities.Settings,
) ([]entities.Package, error) {
	output, err := it.tool.Run(ctx, settings, "list", "-deps", jsonFields, it.pattern)
	if err != nil {
		return nil, err
	}

	packages, err := jsonstream.DecodeString[entities.Package](output)
	if err != nil {
		return nil, fmt.Errorf("failed to parse list output: %w", err)
	}
	return packages, nil
}

// Modules returns the module record of every listed package that has one.
// Standard library packages carry no module and are skipped.
func (it *SourceRepository) Modules(
	ctx context.Context,
	settings *entities.Settings,
) ([]entities.Module, error) {
	packages, err := it.Packages(ctx, settings)
	if err != nil {
		return nil, err
	}

	modules := make([]entities.Module, 0, len(packages))
	for _, pkg := range packages {
		if pkg.Module != nil {
			modules = append(modules, *pkg.Module)
		}
	}
	return modules, nil
}
