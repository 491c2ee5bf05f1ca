// Package report persists identity reports as flat text files.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
)

const dirPermissions = 0o755

// FileReportRepository writes newline-joined reports into the output dir.
type FileReportRepository struct{}

// NewFileReportRepository creates a new FileReportRepository.
func NewFileReportRepository() *FileReportRepository {
	return &FileReportRepository{}
}

// Write persists the given lines under <output_dir>/<name>, creating the
// directory when needed.
func (it *FileReportRepository) Write(
	settings *entities.Settings,
	name string,
	lines []string,
) error {
	path := filepath.Join(settings.OutputDir, name)
	logger.Infof("Writing %s", path)

	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write report %q: %w", path, err)
	}

	return nil
}
