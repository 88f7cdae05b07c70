package alert

import (
	"regexp"
	"strings"
)

// genericTypes lists the known generic document categories. Iteration order
// is a deliberate tie-break when a label mentions more than one token, so
// treat this as a fixed table, not an alphabetical list.
var genericTypes = []string{
	"CRLV",
	"CNH",
	"ANTT",
	"AET",
	"ALVARÁ",
	"LICENÇA AMBIENTAL",
}

var (
	// Trailing "NOME: ..." / "TIPO: ..." metadata appended by some
	// spreadsheet exports.
	metaSuffixRe = regexp.MustCompile(`\s*(NOME|TIPO)\s*:.*$`)
	documentoRe  = regexp.MustCompile(`\bDOCUMENTOS?\b`)
	noiseTailRe  = regexp.MustCompile(`[\s\d.,;:/-]+$`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
)

// Canonicalize maps a free-text document-type label onto a generic category
// used for alert-threshold lookup. Labels that match no known category are
// cleaned up and returned as an ad-hoc category; an empty result means
// "uncategorized" and callers fall back to the default threshold.
func Canonicalize(raw string) string {
	label := strings.ToUpper(strings.TrimSpace(raw))
	label = metaSuffixRe.ReplaceAllString(label, "")
	label = strings.TrimSpace(label)

	for _, generic := range genericTypes {
		if strings.Contains(label, generic) {
			return generic
		}
	}

	label = documentoRe.ReplaceAllString(label, "")
	label = noiseTailRe.ReplaceAllString(label, "")
	label = multiSpaceRe.ReplaceAllString(label, " ")
	return strings.TrimSpace(label)
}
