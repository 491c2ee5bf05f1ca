package controllers

import (
	"context"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gomoddrift/internal/domain/commands"
	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
)

// DownloadController handles the "download" subcommand.
type DownloadController struct {
	command commands.CheckDownload
}

// NewDownloadController creates a new DownloadController.
func NewDownloadController(command commands.CheckDownload) *DownloadController {
	return &DownloadController{command: command}
}

// GetBind returns the Cobra command metadata for the download controller.
func (it *DownloadController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "download",
		Short: "Download dependencies and reconcile the declared set with the cache",
		Long: `Download the module's dependencies, identify them through every
download-based source (the download command itself, the physical module
cache layout, and the package list for the "all" and "./..." patterns),
write one identity report per source, and print the drift between the
declared download set and what the cache actually contains.`,
	}
}

// Execute runs the download check flow.
func (it *DownloadController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()
	configureVerbosity(cmd)

	settings, err := resolveSettings(cmd)
	if err != nil {
		logger.Errorf("Invalid settings: %v", err)
		return
	}

	if execErr := it.command.Execute(ctx, settings, commands.CheckDownloadOptions{
		Out: os.Stdout,
	}); execErr != nil {
		logger.Errorf("Download check failed: %v", execErr)
	}
}
