// Package marknote holds build metadata shared by the CLI and the editor.
package marknote

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version without a leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// Banner is the one-line identification printed by `marknote version`.
func Banner() string {
	v := Version()
	if !IsSemver(v) {
		return "marknote (unknown version)"
	}
	return fmt.Sprintf("marknote v%s", v)
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
