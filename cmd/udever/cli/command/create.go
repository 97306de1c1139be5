package command

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/udevtools/udever/internal/bus"
	"github.com/udevtools/udever/internal/log"
	"github.com/udevtools/udever/udever"
)

// Create creates the create command
func Create() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create and apply a udev permission rule for a USB device",
		Long: `Create synthesizes a udev rule for one USB device, validates it against the
existing rule set, writes it atomically to the rules directory, and reloads
the udev daemon. A failed reload rolls the rule file back.

The target device is selected with --id VID:PID (no enumeration needed) or
--match QUERY (fuzzy match against the attached devices; a tie for the best
match is refused rather than guessed).

Exit codes:
- 0: rule created and applied
- 1: validation, store, or reload failure`,
		RunE: runCreate,
	}

	cmd.Flags().String("id", "", "target device as VID:PID (hex), bypasses enumeration")
	cmd.Flags().String("match", "", "select the best fuzzy match for this query among attached devices")
	cmd.Flags().String("policy", "", "permission policy: uaccess, group, or everyone")
	cmd.Flags().String("symlink", "", "also create /dev/<name> for the device")
	cmd.Flags().Bool("dry-run", false, "print the rule without writing anything")
	cmd.Flags().Bool("no-reload", false, "write the rule but skip the udev reload and trigger")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	globalConfig := GetGlobalConfig(cmd)

	id, _ := cmd.Flags().GetString("id")
	match, _ := cmd.Flags().GetString("match")
	policyName, _ := cmd.Flags().GetString("policy")
	symlink, _ := cmd.Flags().GetString("symlink")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	noReload, _ := cmd.Flags().GetBool("no-reload")

	cfg, err := LoadAppConfig(globalConfig)
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	device, err := selectDevice(id, match)
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	if policyName == "" {
		policyName = string(cfg.DefaultPolicy)
	}
	policy, err := udever.ParsePolicy(policyName)
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	profile := udever.ResolveProfileFrom(cfg.OSReleasePath)
	if policy == udever.PolicyGroupSerial && !profile.Known {
		log.Warnf("%s", udever.WarnUnknownDistro)
		bus.Notify(udever.WarnUnknownDistro)
	}

	spec := udever.NewRuleSpec(device, policy, symlink)
	text, err := udever.Synthesize(spec, profile)
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	store := udever.NewStore(cfg.RulesDir)
	existing, err := store.List()
	if err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}
	if err := udever.Validate(spec.FileName(), text, existing); err != nil {
		HandleError(err, globalConfig.Quiet)
		return err
	}

	if dryRun {
		fmt.Printf("--- %s ---\n%s", spec.FileName(), text)
		return nil
	}

	if cfg.RulesDir == udever.DefaultRulesDir {
		if err := RequireRoot(); err != nil {
			HandleError(err, globalConfig.Quiet)
			return err
		}
	}

	if noReload {
		if err := store.Write(spec.FileName(), text); err != nil {
			HandleError(err, globalConfig.Quiet)
			return err
		}
		if !globalConfig.Quiet {
			fmt.Printf("Wrote %s (reload skipped)\n", spec.FileName())
		}
		return nil
	}

	orchestrator := udever.NewOrchestrator(store, udever.NewExecRunner())
	orchestrator.VerifyTimeout = cfg.VerifyTimeout

	result, err := orchestrator.Apply(cmd.Context(), spec.FileName(), text, spec.Symlink)
	if err != nil {
		HandleError(fmt.Errorf("apply failed (state %s): %w", result.State, err), globalConfig.Quiet)
		return err
	}

	bus.Report(text)
	bus.RuleApplied(result.FileName)
	if !globalConfig.Quiet {
		fmt.Printf("%s %s applied for %s (%s)\n",
			color.Green.Sprint("✓"), result.FileName, device.ID(), policy.Description(profile))
		for _, warning := range result.Warnings {
			fmt.Println(color.Yellow.Sprint("warning: " + warning))
		}
	}

	return nil
}

// selectDevice resolves the target device from the --id shortcut or the
// --match query. Exactly one of the two must be given: with no interactive
// selection surface, an unqualified create has no way to pick a device.
func selectDevice(id, match string) (udever.Device, error) {
	switch {
	case id != "" && match != "":
		return udever.Device{}, fmt.Errorf("--id and --match are mutually exclusive")
	case id != "":
		device, err := udever.ParseDeviceID(id)
		if err != nil {
			return udever.Device{}, err
		}
		if device.IsRootHub {
			return udever.Device{}, fmt.Errorf("%w: %s", udever.ErrRootHubTarget, device.ID())
		}
		return device, nil
	case match != "":
		devices, err := udever.NewEnumerator().List()
		if err != nil {
			return udever.Device{}, err
		}
		return pickBestMatch(udever.Rank(devices, match), match)
	default:
		return udever.Device{}, fmt.Errorf("either --id or --match is required")
	}
}

// pickBestMatch takes the top-ranked device, refusing to guess when several
// distinct devices share the top score.
func pickBestMatch(matches []udever.Match, query string) (udever.Device, error) {
	if len(matches) == 0 {
		return udever.Device{}, fmt.Errorf("no attached device matches %q", query)
	}

	tied := []string{matches[0].Device.Label()}
	for _, m := range matches[1:] {
		if m.Score != matches[0].Score {
			break
		}
		tied = append(tied, m.Device.Label())
	}
	if len(tied) > 1 {
		return udever.Device{}, fmt.Errorf("%q matches %d devices equally well (%s); refine the query or use --id",
			query, len(tied), strings.Join(tied, ", "))
	}

	return matches[0].Device, nil
}
