package repositories

import (
	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
)

// ReportRepository persists a sequence of identity lines under a report
// name inside the configured output directory.
type ReportRepository interface {
	Write(settings *entities.Settings, name string, lines []string) error
}
