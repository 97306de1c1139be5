package udever

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// DefaultRulesDir is where systemd-udevd scans for administrator rules.
const DefaultRulesDir = "/etc/udev/rules.d"

// RuleFile is one on-disk rule artifact. Spec is the best-effort
// reverse-parsed form, nil when the text does not fit the modeled grammar.
type RuleFile struct {
	Name    string
	Path    string
	Content string
	Spec    *RuleSpec
}

// ManagedRuleSet maps rule file name to its parsed form. It is scanned fresh
// from the rules directory on each List call and never cached across runs.
type ManagedRuleSet map[string]RuleFile

// Store lists, reads, writes, and deletes rule files under a rules directory.
// Writes are atomic: a same-directory temp file renamed into place, so udev
// never observes a half-written rule.
type Store struct {
	Dir string

	rulePattern glob.Glob
}

// NewStore creates a Store over the given rules directory, defaulting to
// DefaultRulesDir.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultRulesDir
	}
	return &Store{
		Dir:         dir,
		rulePattern: glob.MustCompile("*.rules"),
	}
}

// List scans the rules directory and returns the managed rule set.
// A missing directory is an empty set, not an error.
func (s *Store) List() (ManagedRuleSet, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ManagedRuleSet{}, nil
		}
		return nil, fmt.Errorf("reading rules directory %s: %w", s.Dir, err)
	}

	if s.rulePattern == nil {
		s.rulePattern = glob.MustCompile("*.rules")
	}

	set := make(ManagedRuleSet)
	for _, entry := range entries {
		if entry.IsDir() || !s.rulePattern.Match(entry.Name()) {
			continue
		}

		path := filepath.Join(s.Dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading rule file %s: %w", path, err)
		}

		rule := RuleFile{
			Name:    entry.Name(),
			Path:    path,
			Content: string(data),
		}
		if spec, ok := ParseRule(rule.Content); ok {
			spec.RuleName = ruleNameFromFile(entry.Name())
			rule.Spec = &spec
		}
		set[entry.Name()] = rule
	}

	return set, nil
}

// Read returns the contents of a single rule file.
func (s *Store) Read(fileName string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrRuleNotFound, fileName)
		}
		return "", storeError(err, fileName)
	}
	return string(data), nil
}

// Exists reports whether a rule file is present.
func (s *Store) Exists(fileName string) bool {
	_, err := os.Stat(filepath.Join(s.Dir, fileName))
	return err == nil
}

// Write atomically writes rule text to fileName: the content goes to a temp
// file in the same directory, is synced, then renamed into place. A crash
// mid-write never leaves a partial rule visible to udev.
func (s *Store) Write(fileName, text string) error {
	path := filepath.Join(s.Dir, fileName)

	tmp, err := os.CreateTemp(s.Dir, "."+fileName+".tmp-*")
	if err != nil {
		return storeError(err, fileName)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return storeError(err, fileName)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return storeError(err, fileName)
	}
	if err := tmp.Close(); err != nil {
		return storeError(err, fileName)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return storeError(err, fileName)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return storeError(err, fileName)
	}

	return nil
}

// Delete removes a rule file. The file must exist.
func (s *Store) Delete(fileName string) error {
	path := filepath.Join(s.Dir, fileName)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRuleNotFound, fileName)
		}
		return storeError(err, fileName)
	}
	return nil
}

// storeError maps filesystem failures onto store error kinds. Privilege
// failures are terminal: retrying cannot succeed without operator
// intervention, so they surface as ErrPermissionDenied without retry.
func storeError(err error, fileName string) error {
	if errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %s", ErrPermissionDenied, fileName)
	}
	return fmt.Errorf("rule file %s: %w", fileName, err)
}

// ruleNameFromFile recovers the rule name from a "99-<name>.rules" file name.
func ruleNameFromFile(fileName string) string {
	name := strings.TrimSuffix(fileName, ".rules")
	return strings.TrimPrefix(name, "99-")
}
