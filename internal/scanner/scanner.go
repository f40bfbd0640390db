// Package scanner extracts API group and method annotations from TypeScript
// source text. Matching is purely textual: bounded regular expressions that do
// not track nesting or spend any effort on malformed syntax. A file either
// yields one FileMatch or is skipped with a reason.
package scanner

import (
	"regexp"

	"github.com/toyz/ipcgen/internal/models"
)

var (
	groupMarkerPattern = regexp.MustCompile(`@backendAPI\(\s*"([^"]+)"\s*\)`)
	classPattern       = regexp.MustCompile(`class\s+(\w+)`)
	methodPattern      = regexp.MustCompile(`@route\(\s*\)\s+async\s+(\w+)\s*\(([^)]*)\)`)
)

// Scanner matches annotation markers in file content
type Scanner struct{}

// NewScanner creates a new annotation scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// MatchFile extracts at most one FileMatch from the given file content.
// Files without a group marker, or with a group marker but no class
// declaration, are skipped silently with the corresponding reason.
func (s *Scanner) MatchFile(content string) models.MatchResult {
	groupCap := groupMarkerPattern.FindStringSubmatch(content)
	if groupCap == nil {
		return models.MatchResult{Skip: models.SkipNoGroupMarker}
	}

	classCap := classPattern.FindStringSubmatch(content)
	if classCap == nil {
		return models.MatchResult{Skip: models.SkipNoClassName}
	}

	match := &models.FileMatch{
		Group:     groupCap[1],
		ClassName: classCap[1],
	}

	for _, methodCap := range methodPattern.FindAllStringSubmatch(content, -1) {
		match.Methods = append(match.Methods, models.MethodDeclaration{
			Name:      methodCap[1],
			RawParams: methodCap[2],
		})
	}

	return models.MatchResult{Match: match}
}
