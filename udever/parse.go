package udever

import (
	"regexp"
	"strings"
)

var (
	vendorPattern  = regexp.MustCompile(`ATTRS\{idVendor\}=="([0-9a-fA-F]{4})"`)
	productPattern = regexp.MustCompile(`ATTRS\{idProduct\}=="([0-9a-fA-F]{4})"`)
	groupPattern   = regexp.MustCompile(`GROUP="([^"]+)"`)
	symlinkPattern = regexp.MustCompile(`SYMLINK\+="([^"]+)"`)
)

// ParseRule reverse-parses managed rule text back into a RuleSpec, best
// effort. It recovers the device ids, the permission policy, and any symlink
// name; rules written by other tools that do not fit the modeled grammar
// report ok=false.
func ParseRule(text string) (RuleSpec, bool) {
	var spec RuleSpec

	v := vendorPattern.FindStringSubmatch(text)
	p := productPattern.FindStringSubmatch(text)
	if v == nil || p == nil {
		return spec, false
	}
	spec.VendorID = strings.ToLower(v[1])
	spec.ProductID = strings.ToLower(p[1])

	switch {
	case strings.Contains(text, `TAG+="uaccess"`):
		spec.Policy = PolicyUserOnly
	case groupPattern.MatchString(text) && strings.Contains(text, `MODE="0660"`):
		spec.Policy = PolicyGroupSerial
	case strings.Contains(text, `MODE="0666"`):
		spec.Policy = PolicyEveryone
	default:
		return spec, false
	}

	if m := symlinkPattern.FindStringSubmatch(text); m != nil {
		spec.Symlink = m[1]
	}

	return spec, true
}
