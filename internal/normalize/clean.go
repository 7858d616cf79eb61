// Package normalize coerces raw extracted strings into typed, bounded
// values. Every function is total: a parse failure yields "missing",
// never an error.
package normalize

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/enseco-data/wellstim/internal/entity"
	"github.com/enseco-data/wellstim/internal/fields"
)

var (
	htmlTagRe      = regexp.MustCompile(`<[^>]+>`)
	controlRe      = regexp.MustCompile(`[\r\n\t]+`)
	nonPrintableRe = regexp.MustCompile(`[^\x09\x0A\x0D\x20-\x7E]`)
	multiSpaceRe   = regexp.MustCompile(`\s+`)
	apiJunkRe      = regexp.MustCompile(`[^0-9A-Za-z-]`)
	digitsOnlyRe   = regexp.MustCompile(`^\d+$`)

	dashVariants = strings.NewReplacer("–", "-", "—", "-")
)

// dateFormats is the fixed, ordered list of accepted layouts; the first
// that parses wins and no others are attempted.
var dateFormats = []string{"01/02/2006", "01/02/06", entity.DateFormat}

// CleanString decodes HTML entities, strips markup tags, collapses
// newlines/tabs into spaces, drops non-printable characters, collapses
// repeated whitespace, and trims. An empty result means missing.
func CleanString(s string) string {
	s = html.UnescapeString(s)
	s = htmlTagRe.ReplaceAllString(s, " ")
	s = controlRe.ReplaceAllString(s, " ")
	s = nonPrintableRe.ReplaceAllString(s, " ")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CanonicalizeAPI cleans s and reduces it to the canonical identifier
// alphabet: unicode dash variants become ASCII hyphens, whitespace is
// removed entirely, anything outside [0-9A-Za-z-] is dropped. A bare
// digit run of a supported length is re-hyphenated at the standard
// group offsets, so "42 123 45678" and "42-123-45678" canonicalize to
// the same dedup key.
func CanonicalizeAPI(s string) string {
	s = CleanString(s)
	s = dashVariants.Replace(s)
	s = multiSpaceRe.ReplaceAllString(s, "")
	s = apiJunkRe.ReplaceAllString(s, "")
	if digitsOnlyRe.MatchString(s) {
		if formatted, ok := fields.FormatAPINumber(s); ok {
			return formatted
		}
	}
	return s
}

// ParseFloat parses s as a floating-point number after stripping
// thousands separators and surrounding whitespace.
func ParseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", "")), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseInt parses s via the float path and truncates, so "12.0" and
// "1,200" both coerce.
func ParseInt(s string) (int64, bool) {
	v, ok := ParseFloat(s)
	if !ok {
		return 0, false
	}
	return int64(v), true
}

// ParseDate tries the accepted layouts in order.
func ParseDate(s string) (entity.Date, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return entity.DateOf(t), true
		}
	}
	return entity.Date{}, false
}

// LimitLength truncates s to the destination field's maximum length.
// Lossy by contract: bounded columns win over long OCR tails.
func LimitLength(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}
