package udever

import (
	"regexp"
	"strings"
)

// RuleSpec is the unit submitted for synthesis: which device, which
// permission model, and optionally a symlink name.
type RuleSpec struct {
	VendorID  string
	ProductID string
	Policy    Policy
	Symlink   string
	RuleName  string
}

// symlinkNamePattern is the restrictive token grammar for symlink names.
// udev would accept more, but anything outside this set invites quoting
// trouble in the rule text and on the shell.
var symlinkNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidSymlinkName reports whether name is an acceptable symlink token.
func ValidSymlinkName(name string) bool {
	return symlinkNamePattern.MatchString(name)
}

// NewRuleSpec builds a RuleSpec for a device, deriving the rule name from the
// symlink if given, else from the sanitized product name, else from the hex
// id pair.
func NewRuleSpec(device Device, policy Policy, symlink string) RuleSpec {
	spec := RuleSpec{
		VendorID:  device.VendorID,
		ProductID: device.ProductID,
		Policy:    policy,
		Symlink:   symlink,
	}

	switch {
	case symlink != "":
		spec.RuleName = symlink
	case sanitizeName(device.Product) != "":
		spec.RuleName = sanitizeName(device.Product)
	default:
		spec.RuleName = device.VendorID + "_" + device.ProductID
	}

	return spec
}

// FileName returns the deterministic rule file name for the spec.
func (s RuleSpec) FileName() string {
	return "99-" + s.RuleName + ".rules"
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// sanitizeName reduces a free-form product string to a filesystem-safe token.
func sanitizeName(name string) string {
	name = unsafeNameChars.ReplaceAllString(strings.TrimSpace(name), "_")
	name = strings.Trim(name, "_")
	if len(name) > 64 {
		name = name[:64]
	}
	return strings.ToLower(name)
}
