package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	logger "github.com/sirupsen/logrus"
	"github.com/samber/lo"

	"github.com/rios0rios0/gomoddrift/internal/diff"
	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
	domainRepos "github.com/rios0rios0/gomoddrift/internal/domain/repositories"
	"github.com/rios0rios0/gomoddrift/internal/infrastructure/repositories/vendortxt"
)

// CheckVendor is the interface for the vendor check flow.
type CheckVendor interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CheckVendorOptions) error
}

// CheckVendorOptions holds runtime options for a single vendor check.
type CheckVendorOptions struct {
	Out io.Writer // sink for the drift diff
}

// CheckVendorCommand identifies the modules declared in vendor/modules.txt,
// persists the used and full reports, and reconciles the declared module
// paths against the directories physically present under vendor/.
type CheckVendorCommand struct {
	vendorSource *vendortxt.SourceRepository
	tool         domainRepos.GoToolRepository
	reports      domainRepos.ReportRepository
}

// NewCheckVendorCommand creates a new CheckVendorCommand.
func NewCheckVendorCommand(
	vendorSource *vendortxt.SourceRepository,
	tool domainRepos.GoToolRepository,
	reports domainRepos.ReportRepository,
) *CheckVendorCommand {
	return &CheckVendorCommand{
		vendorSource: vendorSource,
		tool:         tool,
		reports:      reports,
	}
}

// Execute runs the vendor check flow.
func (it *CheckVendorCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CheckVendorOptions,
) error {
	settings, cleanup, err := ensureGoModCache(settings)
	if err != nil {
		return err
	}
	defer cleanup()

	logModuleContext(settings)

	vendorDir := filepath.Join(settings.ModuleDir, "vendor")
	if _, statErr := os.Stat(vendorDir); statErr != nil {
		logger.Info("Vendoring dependencies")
		if _, vendorErr := it.tool.Run(ctx, settings, "mod", "vendor"); vendorErr != nil {
			return vendorErr
		}
	}

	logger.Info("Identifying vendored dependencies")

	manifestEntries, err := it.vendorSource.Entries(settings)
	if err != nil {
		return err
	}

	used, err := entities.CollectIdentities(vendortxt.FilterModules(manifestEntries, true))
	if err != nil {
		return err
	}
	withUnused, err := entities.CollectIdentities(vendortxt.FilterModules(manifestEntries, false))
	if err != nil {
		return err
	}

	if writeErr := it.reports.Write(settings, "vendor.txt", entities.IdentityLines(used)); writeErr != nil {
		return writeErr
	}
	if writeErr := it.reports.Write(
		settings, "vendor_with_unused.txt", entities.IdentityLines(withUnused),
	); writeErr != nil {
		return writeErr
	}

	driftReport, err := it.reconcile(used, vendorDir)
	if err != nil {
		return err
	}

	if driftReport == "" {
		logger.Info("Diffing vendor dirs: perfect match")
		return nil
	}

	logger.Info("Diffing vendor dirs: identified x actual")
	fmt.Fprintln(opts.Out, driftReport)
	return nil
}

// reconcile diffs the declared module paths against the module-sized
// directories actually present under the vendor root.
func (it *CheckVendorCommand) reconcile(
	used []entities.Identity,
	vendorDir string,
) (string, error) {
	known := lo.Uniq(lo.Map(used, func(id entities.Identity, _ int) string {
		return id.Name
	}))
	sort.Strings(known)

	actual, err := vendortxt.FindVendorDirs(known, vendorDir)
	if err != nil {
		return "", err
	}

	return diff.Unified(known, actual)
}
