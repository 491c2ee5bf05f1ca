package controllers

import (
	"context"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gomoddrift/internal/domain/commands"
	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
)

// DeptreeController handles the "deptree" subcommand.
type DeptreeController struct {
	command commands.Deptree
}

// NewDeptreeController creates a new DeptreeController.
func NewDeptreeController(command commands.Deptree) *DeptreeController {
	return &DeptreeController{command: command}
}

// GetBind returns the Cobra command metadata for the deptree controller.
func (it *DeptreeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "deptree",
		Short: "Print the dependency tree of the packages used by the module",
		Long: `Print the dependency tree of the packages actually compiled into the
module, one importPath@version per line, indented by import depth. The
main module's own packages are shown with the version "main".`,
	}
}

// Execute renders the dependency tree.
func (it *DeptreeController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()
	configureVerbosity(cmd)

	settings, err := resolveSettings(cmd)
	if err != nil {
		logger.Errorf("Invalid settings: %v", err)
		return
	}

	if execErr := it.command.Execute(ctx, settings, commands.DeptreeOptions{
		Out: os.Stdout,
	}); execErr != nil {
		logger.Errorf("Deptree failed: %v", execErr)
	}
}
