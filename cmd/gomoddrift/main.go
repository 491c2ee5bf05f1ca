package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gomoddrift/internal"
)

// flagAdder is implemented by controllers that mount their own flags.
type flagAdder interface {
	AddFlags(cmd *cobra.Command)
}

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "gomoddrift",
		Short: "Dependency identity drift checker for Go modules",
		Long: `Determine the canonical set of third-party dependency identities
(name@version) of a Go module from four independent sources and reconcile
them against each other to detect drift:

  - go mod download -json
  - the physical GOMODCACHE layout
  - go list -deps -json (patterns "all" and "./...")
  - vendor/modules.txt and the physical vendor tree

Each source is normalized into the same report format so any mismatch
between what was declared and what is actually on disk shows up as a
unified diff.`,
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().String("config", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP("module-dir", "m", ".",
		"Path to the Go module to inspect")
	cmd.PersistentFlags().StringP("gomodcache", "c", "",
		"GOMODCACHE directory (default: a throwaway temp dir)")
	cmd.PersistentFlags().StringP("output-dir", "o", ".",
		"Directory the identity reports are written to")
	cmd.PersistentFlags().String("go", "go",
		"The go executable to use")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if adder, ok := ctrl.(flagAdder); ok {
			adder.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()

	// Inject controllers via DIG and mount them
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'gomoddrift': %s", err)
	}
}
