package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/udevtools/udever/udever"
)

// Reload creates the reload command
func Reload() *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Force a udev rules reload and usb add-event trigger",
		RunE:  runReload,
	}
}

func runReload(cmd *cobra.Command, args []string) error {
	globalConfig := GetGlobalConfig(cmd)

	cfg, err := LoadAppConfig(globalConfig)
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	orchestrator := udever.NewOrchestrator(udever.NewStore(cfg.RulesDir), udever.NewExecRunner())
	if !orchestrator.DaemonActive(cmd.Context()) {
		err := fmt.Errorf("%w: start it with 'systemctl start systemd-udevd'", udever.ErrDaemonInactive)
		HandleError(err, globalConfig.Quiet)
		return err
	}

	if err := orchestrator.Reload(cmd.Context()); err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	if !globalConfig.Quiet {
		fmt.Println("udev rules reloaded and usb add events triggered")
	}

	return nil
}
