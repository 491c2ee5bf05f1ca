package controllers

import (
	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewDownloadController); err != nil {
		return err
	}
	if err := container.Provide(NewVendorController); err != nil {
		return err
	}
	if err := container.Provide(NewDeptreeController); err != nil {
		return err
	}
	if err := container.Provide(NewListController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	downloadController *DownloadController,
	vendorController *VendorController,
	deptreeController *DeptreeController,
	listController *ListController,
) *[]entities.Controller {
	return &[]entities.Controller{
		downloadController,
		vendorController,
		deptreeController,
		listController,
	}
}
