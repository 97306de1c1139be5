package udever

import (
	"fmt"
	"strings"
)

// Validate checks a synthesized (or operator-edited) rule against the minimal
// grammar and against the existing managed rule set. It returns the first
// violated check; a failing validation must block the write entirely.
func Validate(fileName, text string, existing ManagedRuleSet) error {
	if err := checkGrammar(text); err != nil {
		return err
	}

	if v := vendorPattern.FindStringSubmatch(text); v != nil && strings.ToLower(v[1]) == RootHubVendorID {
		return fmt.Errorf("%w: vendor %s is reserved for hub controllers", ErrRootHubTarget, RootHubVendorID)
	}

	if _, ok := existing[fileName]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRuleName, fileName)
	}

	if m := symlinkPattern.FindStringSubmatch(text); m != nil {
		for name, rule := range existing {
			if rule.Spec != nil && rule.Spec.Symlink == m[1] {
				return fmt.Errorf("%w: %q is claimed by %s", ErrDuplicateSymlink, m[1], name)
			}
		}
	}

	return nil
}

// checkGrammar enforces the minimal well-formedness rules: balanced double
// quotes and the required SUBSYSTEM and ACTION match keys.
func checkGrammar(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("%w: empty rule", ErrMalformedRule)
	}
	if strings.Count(text, `"`)%2 != 0 {
		return fmt.Errorf("%w: unbalanced quotes", ErrMalformedRule)
	}
	if !strings.Contains(text, `SUBSYSTEM==`) {
		return fmt.Errorf("%w: missing SUBSYSTEM match", ErrMalformedRule)
	}
	if !strings.Contains(text, `ACTION==`) {
		return fmt.Errorf("%w: missing ACTION match", ErrMalformedRule)
	}
	return nil
}
