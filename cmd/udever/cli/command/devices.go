package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/udevtools/udever/cmd/udever/cli/internal"
	"github.com/udevtools/udever/udever"
)

// Devices creates the devices command
func Devices() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices [QUERY]",
		Short: "List attached USB devices, optionally filtered by a fuzzy query",
		Long: `Devices enumerates the attached USB devices from sysfs, excluding root hubs.
An optional query narrows the list by fuzzy match against the manufacturer,
product name, and hex identifiers, best match first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDevices,
	}

	return cmd
}

func runDevices(cmd *cobra.Command, args []string) error {
	globalConfig := GetGlobalConfig(cmd)

	enumerator := udever.NewEnumerator()
	devices, err := enumerator.List()
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	matches := udever.Rank(devices, query)
	if len(matches) == 0 {
		err := fmt.Errorf("no devices match %q", query)
		HandleError(err, globalConfig.Quiet)
		return err
	}

	if err := internal.OutputDevices(matches, globalConfig.OutputFormat); err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	return nil
}
