package repositories

import (
	"context"

	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
)

// GoToolRepository abstracts the external go tool. Implementations run the
// tool inside the configured module directory with the configured module
// cache and return captured standard output.
type GoToolRepository interface {
	Run(ctx context.Context, settings *entities.Settings, args ...string) (string, error)
}
