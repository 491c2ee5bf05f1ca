package controllers

import (
	"context"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gomoddrift/internal/domain/commands"
	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
)

// VendorController handles the "vendor" subcommand.
type VendorController struct {
	command commands.CheckVendor
}

// NewVendorController creates a new VendorController.
func NewVendorController(command commands.CheckVendor) *VendorController {
	return &VendorController{command: command}
}

// GetBind returns the Cobra command metadata for the vendor controller.
func (it *VendorController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "vendor",
		Short: "Identify vendored dependencies and reconcile the vendor tree",
		Long: `Identify the modules declared in vendor/modules.txt (vendoring them
first when the vendor directory is missing), write the used and full
identity reports, and print the drift between the declared module paths
and the directories physically present under vendor/.`,
	}
}

// Execute runs the vendor check flow.
func (it *VendorController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()
	configureVerbosity(cmd)

	settings, err := resolveSettings(cmd)
	if err != nil {
		logger.Errorf("Invalid settings: %v", err)
		return
	}

	if execErr := it.command.Execute(ctx, settings, commands.CheckVendorOptions{
		Out: os.Stdout,
	}); execErr != nil {
		logger.Errorf("Vendor check failed: %v", execErr)
	}
}
