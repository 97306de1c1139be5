package udever

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/udevtools/udever/internal/log"
)

// State is the orchestrator's position in the apply state machine.
type State string

const (
	StateIdle          State = "idle"
	StateHealthChecked State = "health-checked"
	StateApplied       State = "applied"
	StateReloaded      State = "reloaded"
	StateVerified      State = "verified"
	StateFailed        State = "failed"
	StateRolledBack    State = "rolled-back"
)

// WarnSymlinkNotObserved is reported when a requested symlink did not appear
// within the verification window. The rule is left in place: the symlink may
// still materialize, so this is informational rather than a correctness gate.
const WarnSymlinkNotObserved = "symlink not observed within verification window"

// WarnUnknownDistro is reported when the platform profile fell back to the
// default serial group because the distribution was not recognized.
const WarnUnknownDistro = "distribution not recognized, defaulting serial group to dialout"

const (
	udevService = "systemd-udevd"

	defaultVerifyTimeout = 2 * time.Second
	verifyPollInterval   = 100 * time.Millisecond
)

// ApplyResult reports the terminal state of an apply and any non-fatal
// warnings collected along the way.
type ApplyResult struct {
	State    State
	FileName string
	Warnings []string
}

// Orchestrator coordinates the rule application sequence: daemon health
// check, atomic write, reload, trigger, and bounded symlink verification,
// with rollback when reload fails after the write.
type Orchestrator struct {
	Store  *Store
	Runner Runner

	// DevPath is where created symlinks appear; overridable for tests.
	DevPath string
	// VerifyTimeout bounds the symlink verification poll.
	VerifyTimeout time.Duration
}

// NewOrchestrator creates an Orchestrator over the given store and runner.
func NewOrchestrator(store *Store, runner Runner) *Orchestrator {
	return &Orchestrator{
		Store:         store,
		Runner:        runner,
		DevPath:       "/dev",
		VerifyTimeout: defaultVerifyTimeout,
	}
}

// DaemonActive reports whether systemd-udevd is running.
func (o *Orchestrator) DaemonActive(ctx context.Context) bool {
	_, err := o.Runner.Run(ctx, "systemctl", "is-active", udevService)
	return err == nil
}

// Apply runs the full state machine for a validated rule. The daemon health
// check happens before any filesystem effect; a reload failure after the
// write triggers rollback to the prior state.
func (o *Orchestrator) Apply(ctx context.Context, fileName, text, symlink string) (ApplyResult, error) {
	result := ApplyResult{State: StateIdle, FileName: fileName}

	if !o.DaemonActive(ctx) {
		result.State = StateFailed
		return result, fmt.Errorf("%w: start it with 'systemctl start %s'", ErrDaemonInactive, udevService)
	}
	result.State = StateHealthChecked

	// Apply is an entry point of its own, so it re-checks the rule text
	// against the managed set rather than trusting the caller to have done so.
	existing, err := o.Store.List()
	if err != nil {
		result.State = StateFailed
		return result, err
	}
	// replacing the target file is not a collision with itself
	delete(existing, fileName)
	if err := Validate(fileName, text, existing); err != nil {
		result.State = StateFailed
		return result, err
	}

	// capture prior content so a failed reload can restore it
	var backup string
	hadPrior := o.Store.Exists(fileName)
	if hadPrior {
		prior, err := o.Store.Read(fileName)
		if err != nil {
			result.State = StateFailed
			return result, fmt.Errorf("capturing backup of %s: %w", fileName, err)
		}
		backup = prior
	}

	if err := o.Store.Write(fileName, text); err != nil {
		result.State = StateFailed
		return result, err
	}
	result.State = StateApplied
	log.Infof("wrote rule file %s", filepath.Join(o.Store.Dir, fileName))

	if err := o.Reload(ctx); err != nil {
		result.State = o.rollback(fileName, backup, hadPrior)
		return result, err
	}
	result.State = StateReloaded

	if symlink == "" {
		// nothing to observe, the verification step holds trivially
		result.State = StateVerified
		return result, nil
	}

	if o.verifySymlink(ctx, symlink) {
		result.State = StateVerified
	} else {
		result.Warnings = append(result.Warnings, WarnSymlinkNotObserved)
	}

	return result, nil
}

// Reload asks the daemon to re-read its rule set and then replays add events
// for the usb subsystem. Reload must come first: events triggered against a
// stale rule set would miss the new rule.
func (o *Orchestrator) Reload(ctx context.Context) error {
	if _, err := o.Runner.Run(ctx, "udevadm", "control", "--reload"); err != nil {
		return fmt.Errorf("%w: %v", ErrReloadFailed, err)
	}
	if _, err := o.Runner.Run(ctx, "udevadm", "trigger", "--action=add", "--subsystem-match=usb"); err != nil {
		return fmt.Errorf("%w: %v", ErrReloadFailed, err)
	}
	return nil
}

// Remove deletes a managed rule file and reloads the daemon so the removal
// takes effect.
func (o *Orchestrator) Remove(ctx context.Context, fileName string) error {
	if !o.DaemonActive(ctx) {
		return fmt.Errorf("%w: start it with 'systemctl start %s'", ErrDaemonInactive, udevService)
	}
	if err := o.Store.Delete(fileName); err != nil {
		return err
	}
	return o.Reload(ctx)
}

// rollback undoes the write after a reload failure: restore the prior
// content when a backup was captured, otherwise delete the new file.
// A rollback failure is logged but never masks the original error.
func (o *Orchestrator) rollback(fileName, backup string, hadPrior bool) State {
	var err error
	if hadPrior {
		err = o.Store.Write(fileName, backup)
	} else {
		err = o.Store.Delete(fileName)
	}
	if err != nil {
		log.Errorf("rollback of %s failed: %v", fileName, err)
		return StateFailed
	}
	log.Warnf("rolled back rule file %s", fileName)
	return StateRolledBack
}

// verifySymlink polls for the device symlink within the bounded verification
// window. A fixed interval poll, not a busy loop.
func (o *Orchestrator) verifySymlink(ctx context.Context, symlink string) bool {
	timeout := o.VerifyTimeout
	if timeout <= 0 {
		timeout = defaultVerifyTimeout
	}
	path := filepath.Join(o.DevPath, symlink)
	deadline := time.Now().Add(timeout)

	for {
		if _, err := os.Lstat(path); err == nil {
			log.Debugf("observed symlink %s", path)
			return true
		}
		if time.Now().After(deadline) || ctx.Err() != nil {
			return false
		}
		time.Sleep(verifyPollInterval)
	}
}
