package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
	"github.com/rios0rios0/gomoddrift/internal/infrastructure/repositories/listdeps"
)

const indentWidth = 4

// Deptree is the interface for the dependency tree rendering.
type Deptree interface {
	Execute(ctx context.Context, settings *entities.Settings, opts DeptreeOptions) error
}

// DeptreeOptions holds runtime options for a single deptree run.
type DeptreeOptions struct {
	Out io.Writer
}

// DeptreeCommand prints the dependency tree of the packages actually used
// by the module. `go list -deps` emits packages in dependency-first order,
// so walking the output in reverse yields importers before their imports;
// a stack of direct-dependency sets tracks the current nesting.
type DeptreeCommand struct {
	listdepsAll *listdeps.SourceRepository
}

// NewDeptreeCommand creates a new DeptreeCommand.
func NewDeptreeCommand(listdepsAll *listdeps.SourceRepository) *DeptreeCommand {
	return &DeptreeCommand{listdepsAll: listdepsAll}
}

// Execute renders the package dependency tree to the configured writer.
func (it *DeptreeCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts DeptreeOptions,
) error {
	settings, cleanup, err := ensureGoModCache(settings)
	if err != nil {
		return err
	}
	defer cleanup()

	packages, err := it.listdepsAll.Packages(ctx, settings)
	if err != nil {
		return err
	}

	return renderDeptree(packages, opts.Out)
}

func renderDeptree(packages []entities.Package, out io.Writer) error {
	var depstack []map[string]bool

	for i := len(packages) - 1; i >= 0; i-- {
		pkg := packages[i]
		if pkg.Module == nil {
			continue
		}

		version := "main"
		if !pkg.Module.Main {
			identity, err := entities.IdentityFromModule(*pkg.Module)
			if err != nil {
				return err
			}
			version = identity.Version
		}

		for len(depstack) > 0 && !depstack[len(depstack)-1][pkg.ImportPath] {
			depstack = depstack[:len(depstack)-1]
		}

		indent := strings.Repeat(" ", indentWidth*len(depstack))
		fmt.Fprintf(out, "%s%s@%s\n", indent, pkg.ImportPath, version)

		deps := make(map[string]bool, len(pkg.Deps))
		for _, dep := range pkg.Deps {
			deps[dep] = true
		}
		depstack = append(depstack, deps)
	}

	return nil
}
