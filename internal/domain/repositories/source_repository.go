package repositories

import (
	"context"

	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
)

// SourceRepository abstracts one place resolved module records can be read
// from: the download command, the physical module cache, the package list,
// or the vendor manifest. Every source yields the same Module shape so the
// resulting identities are comparable across sources.
type SourceRepository interface {
	// Name returns the source identifier (e.g. "download", "gomodcache").
	Name() string

	// Modules reads the raw module records from this source. A source that
	// partially fails to parse must fail the whole read, never drop entries.
	Modules(ctx context.Context, settings *entities.Settings) ([]entities.Module, error)
}
