package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
)

// resolveSettings builds the effective settings for one invocation: the
// config file (explicit or auto-detected) provides the base, CLI flags
// override individual values. Running without any config file is fine;
// the defaults describe the current directory.
func resolveSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		if found, err := entities.FindConfigFile(); err == nil {
			configPath = found
		}
	}

	settings := entities.DefaultSettings()
	if configPath != "" {
		loaded, err := entities.LoadSettings(configPath)
		if err != nil {
			return nil, err
		}
		logger.Debugf("Loaded settings from %s", configPath)
		settings = loaded
	}

	applyFlagOverrides(cmd, settings)

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// applyFlagOverrides copies every flag the user explicitly set over the
// file-provided value.
func applyFlagOverrides(cmd *cobra.Command, settings *entities.Settings) {
	flags := cmd.Flags()

	if flags.Changed("module-dir") {
		settings.ModuleDir, _ = flags.GetString("module-dir")
	}
	if flags.Changed("gomodcache") {
		settings.GoModCache, _ = flags.GetString("gomodcache")
	}
	if flags.Changed("output-dir") {
		settings.OutputDir, _ = flags.GetString("output-dir")
	}
	if flags.Changed("go") {
		settings.GoBinary, _ = flags.GetString("go")
	}
	if flags.Changed("keep-unused") {
		keepUnused, _ := flags.GetBool("keep-unused")
		settings.DropUnused = !keepUnused
	}
}

// configureVerbosity raises the log level when --verbose is set.
func configureVerbosity(cmd *cobra.Command) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}
}
