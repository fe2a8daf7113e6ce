// Package match recognizes GitHub CLI pull-request merge commands and
// extracts the pull-request number they target.
package match

import (
	"regexp"
	"strings"
)

// mergeMarker is the literal substring that identifies a pull-request merge
// invocation of the GitHub CLI. Matching is a substring check so merges
// embedded in shell chains are still recognized.
const mergeMarker = "gh pr merge"

// prPatterns are tried in order against a merge command. Each has the
// pull-request number as its first capture group.
var prPatterns = []*regexp.Regexp{
	// Numeric argument, optionally #-prefixed: "gh pr merge 42", "gh pr merge #42".
	regexp.MustCompile(`gh pr merge\s+#?(\d+)`),
	// URL argument: "gh pr merge https://github.com/acme/site/pull/42".
	regexp.MustCompile(`gh pr merge\s+\S*?/pull/(\d+)`),
}

// IsMergeCommand reports whether cmd contains a pull-request merge
// invocation anywhere in its text.
func IsMergeCommand(cmd string) bool {
	return strings.Contains(cmd, mergeMarker)
}

// ExtractPR returns the pull-request number referenced by a merge command.
// Numeric arguments take precedence over URL arguments. Returns false when
// cmd names no recognizable pull request, as with a bare "gh pr merge" that
// relies on branch context.
func ExtractPR(cmd string) (string, bool) {
	for _, re := range prPatterns {
		if m := re.FindStringSubmatch(cmd); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// refPatterns parse a standalone pull-request reference, the forms a human
// types as a CLI argument rather than inside a merge command.
var refPatterns = []*regexp.Regexp{
	// Bare or #-prefixed number: "42", "#42".
	regexp.MustCompile(`^#?(\d+)$`),
	// Pull-request URL: "https://github.com/acme/site/pull/42".
	regexp.MustCompile(`^\S*?/pull/(\d+)(?:/\S*)?$`),
}

// ParseRef extracts the pull-request number from a standalone reference:
// a bare number, a #-prefixed number, or a pull-request URL. Returns false
// when the reference fits none of those forms.
func ParseRef(ref string) (string, bool) {
	for _, re := range refPatterns {
		if m := re.FindStringSubmatch(ref); m != nil {
			return m[1], true
		}
	}
	return "", false
}
