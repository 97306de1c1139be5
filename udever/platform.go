package udever

import (
	"bufio"
	"os"
	"strings"

	"github.com/udevtools/udever/internal/log"
)

// DefaultOSReleasePath is the standard distribution identification file.
const DefaultOSReleasePath = "/etc/os-release"

// Serial group names by distribution family.
const (
	GroupUUCP    = "uucp"
	GroupDialout = "dialout"
)

// Profile describes the platform defaults resolved once per invocation.
// Known is false when the distribution could not be identified and the
// broader-compatibility default was used instead.
type Profile struct {
	DistroID    string
	SerialGroup string
	Known       bool
}

// uucpDistros are the distributions whose serial group is uucp rather than
// dialout. Everything else, including unknowns, falls back to dialout.
var uucpDistros = map[string]struct{}{
	"arch":    {},
	"manjaro": {},
}

var dialoutDistros = map[string]struct{}{
	"debian":    {},
	"ubuntu":    {},
	"linuxmint": {},
	"fedora":    {},
	"rhel":      {},
}

// ResolveProfile detects the running distribution and picks the serial group
// to use for group-based permission rules. It never fails: when the release
// file is absent or the distribution unknown, the dialout default is returned
// with Known=false so callers can surface a warning.
func ResolveProfile() Profile {
	return ResolveProfileFrom(DefaultOSReleasePath)
}

// ResolveProfileFrom resolves a profile from a specific os-release file.
func ResolveProfileFrom(path string) Profile {
	fields, err := parseOSRelease(path)
	if err != nil {
		log.Warnf("could not read %s: %v; defaulting serial group to %s", path, err, GroupDialout)
		return Profile{SerialGroup: GroupDialout}
	}

	// ID first, then each ID_LIKE entry for derivatives
	candidates := []string{fields["ID"]}
	candidates = append(candidates, strings.Fields(fields["ID_LIKE"])...)

	for _, id := range candidates {
		if id == "" {
			continue
		}
		if _, ok := uucpDistros[id]; ok {
			return Profile{DistroID: fields["ID"], SerialGroup: GroupUUCP, Known: true}
		}
		if _, ok := dialoutDistros[id]; ok {
			return Profile{DistroID: fields["ID"], SerialGroup: GroupDialout, Known: true}
		}
	}

	log.Debugf("unrecognized distribution %q; defaulting serial group to %s", fields["ID"], GroupDialout)
	return Profile{DistroID: fields["ID"], SerialGroup: GroupDialout}
}

// parseOSRelease reads the KEY=value pairs of an os-release style file.
func parseOSRelease(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fields := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields[key] = strings.Trim(value, `"`)
	}

	return fields, scanner.Err()
}
