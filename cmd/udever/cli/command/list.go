package command

import (
	"github.com/spf13/cobra"

	"github.com/udevtools/udever/cmd/udever/cli/internal"
	"github.com/udevtools/udever/udever"
)

// List creates the list command
func List() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the rule files in the rules directory",
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	globalConfig := GetGlobalConfig(cmd)

	cfg, err := LoadAppConfig(globalConfig)
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	store := udever.NewStore(cfg.RulesDir)
	rules, err := store.List()
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	if err := internal.OutputRules(rules, globalConfig.OutputFormat); err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	return nil
}
