package commands

import (
	"context"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gomoddrift/internal/diff"
	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
	domainRepos "github.com/rios0rios0/gomoddrift/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gomoddrift/internal/infrastructure/repositories"
)

// CheckDownload is the interface for the download check flow.
type CheckDownload interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CheckDownloadOptions) error
}

// CheckDownloadOptions holds runtime options for a single download check.
type CheckDownloadOptions struct {
	Out io.Writer // sink for the drift diff
}

// downloadReports maps each source to the report file it is written to.
var downloadReports = []struct {
	source string
	file   string
}{
	{source: "download", file: "download.txt"},
	{source: "gomodcache", file: "gomodcache.txt"},
	{source: "listdeps-all", file: "listdeps_all.txt"},
	{source: "listdeps-threedot", file: "listdeps_threedot.txt"},
}

// CheckDownloadCommand downloads the module's dependencies, identifies them
// through every download-based source, persists one report per source, and
// diffs the declared download set against the physical cache layout.
type CheckDownloadCommand struct {
	sourceRegistry *infraRepos.SourceRegistry
	reports        domainRepos.ReportRepository
}

// NewCheckDownloadCommand creates a new CheckDownloadCommand.
func NewCheckDownloadCommand(
	sourceRegistry *infraRepos.SourceRegistry,
	reports domainRepos.ReportRepository,
) *CheckDownloadCommand {
	return &CheckDownloadCommand{
		sourceRegistry: sourceRegistry,
		reports:        reports,
	}
}

// Execute runs the download check flow.
func (it *CheckDownloadCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CheckDownloadOptions,
) error {
	settings, cleanup, err := ensureGoModCache(settings)
	if err != nil {
		return err
	}
	defer cleanup()

	logModuleContext(settings)
	logger.Info("Downloading and identifying dependencies")

	lines := make(map[string][]string, len(downloadReports))
	for _, rep := range downloadReports {
		identities, identifyErr := it.identify(ctx, settings, rep.source)
		if identifyErr != nil {
			return identifyErr
		}

		rendered := entities.IdentityLines(identities)
		if writeErr := it.reports.Write(settings, rep.file, rendered); writeErr != nil {
			return writeErr
		}
		lines[rep.source] = rendered
	}

	driftReport, diffErr := diff.Unified(lines["download"], lines["gomodcache"])
	if diffErr != nil {
		return diffErr
	}

	if driftReport == "" {
		logger.Info("Diffing downloaded modules: perfect match")
		return nil
	}

	logger.Info("Diffing downloaded modules: identified x actual")
	fmt.Fprintln(opts.Out, driftReport)
	return nil
}

// identify reads one source and resolves its records into sorted identities.
func (it *CheckDownloadCommand) identify(
	ctx context.Context,
	settings *entities.Settings,
	sourceName string,
) ([]entities.Identity, error) {
	source, err := it.sourceRegistry.Get(sourceName)
	if err != nil {
		return nil, err
	}

	modules, err := source.Modules(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", sourceName, err)
	}

	identities, err := entities.CollectIdentities(modules)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", sourceName, err)
	}
	return identities, nil
}
