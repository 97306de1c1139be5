package udever

import "fmt"

// Policy is the closed set of permission models a rule can grant.
type Policy string

const (
	// PolicyUserOnly grants access to the active session user via the uaccess ACL tag
	PolicyUserOnly Policy = "uaccess"
	// PolicyGroupSerial grants mode 0660 access to the platform serial group
	PolicyGroupSerial Policy = "group"
	// PolicyEveryone grants world access with mode 0666. Not recommended.
	PolicyEveryone Policy = "everyone"
)

// ParsePolicy converts an operator-supplied policy name into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyUserOnly, PolicyGroupSerial, PolicyEveryone:
		return Policy(s), nil
	case "":
		return "", ErrEmptyPolicy
	default:
		return "", fmt.Errorf("unknown policy %q (expected %s, %s, or %s)",
			s, PolicyUserOnly, PolicyGroupSerial, PolicyEveryone)
	}
}

// Clause returns the udev permission clause for the policy, using the given
// profile for the group name. An unknown policy yields ErrEmptyPolicy; with
// the closed constant set above this is unreachable, but the boundary is
// defended anyway.
func (p Policy) Clause(profile Profile) (string, error) {
	switch p {
	case PolicyUserOnly:
		return `TAG+="uaccess"`, nil
	case PolicyGroupSerial:
		return fmt.Sprintf(`GROUP="%s", MODE="0660"`, profile.SerialGroup), nil
	case PolicyEveryone:
		return `MODE="0666"`, nil
	default:
		return "", ErrEmptyPolicy
	}
}

// Description returns the operator-facing summary of the policy.
func (p Policy) Description(profile Profile) string {
	switch p {
	case PolicyUserOnly:
		return "current user only (uaccess ACL)"
	case PolicyGroupSerial:
		return fmt.Sprintf("group %q (mode 0660)", profile.SerialGroup)
	case PolicyEveryone:
		return "everyone (mode 0666)"
	default:
		return string(p)
	}
}
