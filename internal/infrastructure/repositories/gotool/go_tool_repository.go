// Package gotool invokes the external go executable and captures its output.
package gotool

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
)

// GoToolRepository runs the configured go binary inside the module directory.
type GoToolRepository struct{}

// NewGoToolRepository creates a new GoToolRepository.
func NewGoToolRepository() *GoToolRepository {
	return &GoToolRepository{}
}

// Run executes `<go_binary> <args...>` in the module directory with
// GOMODCACHE pointed at the configured cache, returning standard output.
// A non-zero exit is fatal; standard error is attached to the error.
func (it *GoToolRepository) Run(
	ctx context.Context,
	settings *entities.Settings,
	args ...string,
) (string, error) {
	logger.Debugf("Running %s %s in %s", settings.GoBinary, strings.Join(args, " "), settings.ModuleDir)

	cmd := exec.CommandContext(ctx, settings.GoBinary, args...)
	cmd.Dir = settings.ModuleDir
	cmd.Env = append(os.Environ(), "GOMODCACHE="+settings.GoModCache)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf(
			"%s %s failed: %w\n%s",
			settings.GoBinary, strings.Join(args, " "), err, stderr.String(),
		)
	}

	return stdout.String(), nil
}
