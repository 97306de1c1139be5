package udever

import "errors"

// Sentinel errors for specific failure cases. Callers branch on these with
// errors.Is; call sites wrap them with additional context.
var (
	// ErrSysfsUnreadable indicates the USB attribute source could not be read at all
	ErrSysfsUnreadable = errors.New("usb sysfs hierarchy is not readable")
	// ErrNoDevices indicates enumeration succeeded but found no selectable devices
	ErrNoDevices = errors.New("no usb devices found")
	// ErrInvalidDeviceID indicates a VID:PID pair that is not valid hexadecimal
	ErrInvalidDeviceID = errors.New("invalid device id")

	// ErrInvalidSymlinkName indicates a symlink name outside the allowed token pattern
	ErrInvalidSymlinkName = errors.New("invalid symlink name")
	// ErrEmptyPolicy indicates a rule spec without a permission policy
	ErrEmptyPolicy = errors.New("permission policy not set")

	// ErrMalformedRule indicates rule text that fails the minimal grammar check
	ErrMalformedRule = errors.New("malformed rule text")
	// ErrRootHubTarget indicates a rule that targets the reserved root hub signature
	ErrRootHubTarget = errors.New("rule targets a usb root hub")
	// ErrDuplicateRuleName indicates a rule file name already present in the rules directory
	ErrDuplicateRuleName = errors.New("rule file name already exists")
	// ErrDuplicateSymlink indicates a symlink name already claimed by another managed rule
	ErrDuplicateSymlink = errors.New("symlink name already in use")

	// ErrRuleNotFound indicates a delete or read of a rule file that does not exist
	ErrRuleNotFound = errors.New("rule file not found")
	// ErrPermissionDenied indicates insufficient filesystem privilege for a store mutation
	ErrPermissionDenied = errors.New("permission denied writing to rules directory")

	// ErrDaemonInactive indicates systemd-udevd is not running
	ErrDaemonInactive = errors.New("udev daemon is not active")
	// ErrReloadFailed indicates udevadm reload or trigger did not complete
	ErrReloadFailed = errors.New("udev reload failed")
)
