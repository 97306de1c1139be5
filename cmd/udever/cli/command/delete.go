package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/udevtools/udever/internal/bus"
	"github.com/udevtools/udever/udever"
)

// Delete creates the delete command
func Delete() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a managed rule file and reload udev",
		Long: `Delete removes a rule file from the rules directory and reloads the udev
daemon so the removal takes effect. NAME is either the full file name
(99-stlink.rules) or the bare rule name (stlink).`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().Bool("no-reload", false, "delete the rule but skip the udev reload and trigger")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	globalConfig := GetGlobalConfig(cmd)
	noReload, _ := cmd.Flags().GetBool("no-reload")

	cfg, err := LoadAppConfig(globalConfig)
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	store := udever.NewStore(cfg.RulesDir)
	fileName := resolveFileName(store, args[0])

	if cfg.RulesDir == udever.DefaultRulesDir {
		if err := RequireRoot(); err != nil {
			HandleError(err, globalConfig.Quiet)
			return err
		}
	}

	if noReload {
		err = store.Delete(fileName)
	} else {
		orchestrator := udever.NewOrchestrator(store, udever.NewExecRunner())
		err = orchestrator.Remove(cmd.Context(), fileName)
	}
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	bus.RuleDeleted(fileName)
	if !globalConfig.Quiet {
		fmt.Printf("Deleted %s\n", fileName)
	}

	return nil
}

// resolveFileName accepts either a full rule file name or the bare rule name.
func resolveFileName(store *udever.Store, name string) string {
	if strings.HasSuffix(name, ".rules") {
		return name
	}
	candidate := "99-" + name + ".rules"
	if store.Exists(candidate) {
		return candidate
	}
	return name + ".rules"
}
