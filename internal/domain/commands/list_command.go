package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
	infraRepos "github.com/rios0rios0/gomoddrift/internal/infrastructure/repositories"
)

// List is the interface for the single-source listing.
type List interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ListOptions) error
}

// ListOptions holds runtime options for a single list run.
type ListOptions struct {
	Source string
	Out    io.Writer
}

// ListCommand prints the canonical identity report of one source.
type ListCommand struct {
	sourceRegistry *infraRepos.SourceRegistry
}

// NewListCommand creates a new ListCommand.
func NewListCommand(sourceRegistry *infraRepos.SourceRegistry) *ListCommand {
	return &ListCommand{sourceRegistry: sourceRegistry}
}

// Execute resolves and prints the identities of the selected source.
func (it *ListCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ListOptions,
) error {
	source, err := it.sourceRegistry.Get(opts.Source)
	if err != nil {
		return err
	}

	settings, cleanup, err := ensureGoModCache(settings)
	if err != nil {
		return err
	}
	defer cleanup()

	modules, err := source.Modules(ctx, settings)
	if err != nil {
		return fmt.Errorf("source %s: %w", opts.Source, err)
	}

	identities, err := entities.CollectIdentities(modules)
	if err != nil {
		return fmt.Errorf("source %s: %w", opts.Source, err)
	}

	for _, line := range entities.IdentityLines(identities) {
		fmt.Fprintln(opts.Out, line)
	}
	return nil
}
