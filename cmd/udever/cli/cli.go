package cli

import (
	"github.com/spf13/cobra"

	"github.com/udevtools/udever/cmd/udever/cli/command"
	"github.com/udevtools/udever/internal"
)

// Application constructs the udever CLI application
func Application() *cobra.Command {
	app := &cobra.Command{
		Use:     "udever",
		Short:   "Generate, validate, and apply udev permission rules for USB devices",
		Long:    `Udever enumerates attached USB devices and synthesizes safe udev permission rules for them: ACL-based access via the uaccess tag, group-based access with the platform serial group, or world access. Rules are validated before they are written and the udev daemon is reloaded with rollback on failure.`,
		Version: internal.ApplicationVersion,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			command.SetupLogging(verbose)
		},
	}

	// Add global flags
	app.PersistentFlags().StringP("config", "c", "", "path to configuration file")
	app.PersistentFlags().String("rules-dir", "", "udev rules directory (default /etc/udev/rules.d)")
	app.PersistentFlags().StringP("output", "o", "table", "output format (table, json)")
	app.PersistentFlags().BoolP("quiet", "q", false, "suppress all non-essential output")
	app.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Add subcommands
	app.AddCommand(
		command.Create(),
		command.Devices(),
		command.List(),
		command.Delete(),
		command.Reload(),
		command.Version(),
	)

	return app
}
