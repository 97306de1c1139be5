package udever

import (
	"fmt"
	"strings"
)

// Synthesize converts a rule spec into a single-line udev rule terminated by
// a newline. Symlink names are validated against the restrictive token
// pattern before they reach the rule text.
func Synthesize(spec RuleSpec, profile Profile) (string, error) {
	vid, err := NormalizeHexID(spec.VendorID)
	if err != nil {
		return "", fmt.Errorf("vendor id %q: %w", spec.VendorID, err)
	}
	pid, err := NormalizeHexID(spec.ProductID)
	if err != nil {
		return "", fmt.Errorf("product id %q: %w", spec.ProductID, err)
	}

	clause, err := spec.Policy.Clause(profile)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, `SUBSYSTEM=="usb", ACTION=="add", ATTRS{idVendor}=="%s", ATTRS{idProduct}=="%s", %s`,
		vid, pid, clause)

	if spec.Symlink != "" {
		if !ValidSymlinkName(spec.Symlink) {
			return "", fmt.Errorf("%w: %q", ErrInvalidSymlinkName, spec.Symlink)
		}
		fmt.Fprintf(&b, `, SYMLINK+="%s"`, spec.Symlink)
	}
	b.WriteString("\n")

	return b.String(), nil
}
