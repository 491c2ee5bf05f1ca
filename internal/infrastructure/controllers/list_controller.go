package controllers

import (
	"context"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gomoddrift/internal/domain/commands"
	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
)

// ListController handles the "list" subcommand.
type ListController struct {
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(command commands.List) *ListController {
	return &ListController{command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list",
		Short: "Print the identity report of a single source",
		Long: `Print the sorted name@version report of one dependency source.

Available sources: download, gomodcache, listdeps-all, listdeps-threedot,
and vendor.`,
	}
}

// AddFlags adds the list-specific flags.
func (it *ListController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("source", "s", "download",
		"Source to identify dependencies from")
	cmd.Flags().Bool("keep-unused", false,
		"Keep vendor manifest modules that declare no packages")
}

// Execute lists the identities of the selected source.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()
	configureVerbosity(cmd)

	settings, err := resolveSettings(cmd)
	if err != nil {
		logger.Errorf("Invalid settings: %v", err)
		return
	}

	source, _ := cmd.Flags().GetString("source")

	if execErr := it.command.Execute(ctx, settings, commands.ListOptions{
		Source: source,
		Out:    os.Stdout,
	}); execErr != nil {
		logger.Errorf("List failed: %v", execErr)
	}
}
