package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/gomoddrift/internal/domain/repositories"
	"github.com/rios0rios0/gomoddrift/internal/infrastructure/repositories/download"
	"github.com/rios0rios0/gomoddrift/internal/infrastructure/repositories/gotool"
	"github.com/rios0rios0/gomoddrift/internal/infrastructure/repositories/listdeps"
	"github.com/rios0rios0/gomoddrift/internal/infrastructure/repositories/modcache"
	"github.com/rios0rios0/gomoddrift/internal/infrastructure/repositories/report"
	"github.com/rios0rios0/gomoddrift/internal/infrastructure/repositories/vendortxt"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register the external collaborators behind their domain interfaces
	if err := container.Provide(gotool.NewGoToolRepository); err != nil {
		return err
	}
	if err := container.Provide(func(impl *gotool.GoToolRepository) domainRepos.GoToolRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(report.NewFileReportRepository); err != nil {
		return err
	}
	if err := container.Provide(func(impl *report.FileReportRepository) domainRepos.ReportRepository {
		return impl
	}); err != nil {
		return err
	}

	// Register the concrete sources the commands depend on directly
	if err := container.Provide(download.NewSourceRepository); err != nil {
		return err
	}
	if err := container.Provide(modcache.NewSourceRepository); err != nil {
		return err
	}
	if err := container.Provide(listdeps.NewAllSourceRepository); err != nil {
		return err
	}
	if err := container.Provide(vendortxt.NewSourceRepository); err != nil {
		return err
	}

	// Register the source registry with every source, one per report
	if err := container.Provide(func(
		tool domainRepos.GoToolRepository,
		downloadSource *download.SourceRepository,
		modcacheSource *modcache.SourceRepository,
		listdepsAll *listdeps.SourceRepository,
		vendorSource *vendortxt.SourceRepository,
	) *SourceRegistry {
		reg := NewSourceRegistry()
		reg.Register(downloadSource)
		reg.Register(modcacheSource)
		reg.Register(listdepsAll)
		reg.Register(listdeps.NewThreeDotSourceRepository(tool))
		reg.Register(vendorSource)
		return reg
	}); err != nil {
		return err
	}

	return nil
}
