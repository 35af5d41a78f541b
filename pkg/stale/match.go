package stale

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/lerenn/stale-bot/pkg/tracker"
)

// stripAccents decomposes characters and drops combining marks, so "café"
// folds to "cafe".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldLabel returns the accent-stripped form of a label name. On a transform
// error the name is returned unchanged.
func foldLabel(name string) string {
	folded, _, err := transform.String(stripAccents, name)
	if err != nil {
		return name
	}
	return folded
}

// EqualLabels reports whether two label names match under the comparison
// used for current labels: case-insensitive and accent-insensitive, but
// otherwise exact. No substring or prefix matching.
func EqualLabels(a, b string) bool {
	return strings.EqualFold(foldLabel(a), foldLabel(b))
}

// IsLabeled reports whether the item currently carries the given label.
func IsLabeled(item tracker.Item, label string) bool {
	for _, name := range item.Labels {
		if EqualLabels(name, label) {
			return true
		}
	}
	return false
}

// HasAnyLabel reports whether the item currently carries any of the given
// labels.
func HasAnyLabel(item tracker.Item, labels []string) bool {
	for _, label := range labels {
		if IsLabeled(item, label) {
			return true
		}
	}
	return false
}
