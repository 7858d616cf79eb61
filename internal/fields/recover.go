package fields

import (
	"regexp"
	"sort"
	"strings"
)

// API-number recovery is invoked only when the cascade finds nothing.
// It scans for digit runs of the three lengths an API number can have,
// tolerating interleaved separators, and hyphenates the best candidate
// at the fixed group offsets. This is a heuristic, not a checksum: a
// spurious numeric run can slip through, which is an accepted trade
// for a higher capture rate on noisy scans.

var (
	apiRunRe        = regexp.MustCompile(`(?:\d[\s\-/\\]*){10,14}`)
	apiContiguousRe = regexp.MustCompile(`\b\d{10,14}\b`)
	nonDigitRe      = regexp.MustCompile(`\D`)

	dashVariants = strings.NewReplacer("–", "-", "—", "-")
)

// RecoverAPINumber attempts to reconstruct an API number from irregular
// text. Candidates are deduplicated in first-seen order, then longer
// digit runs are preferred.
func RecoverAPINumber(text string) (string, bool) {
	normalized := dashVariants.Replace(text)

	var candidates []string
	for _, run := range apiRunRe.FindAllString(normalized, -1) {
		digits := nonDigitRe.ReplaceAllString(run, "")
		if len(digits) >= 10 && len(digits) <= 14 {
			candidates = append(candidates, digits)
		}
	}
	candidates = append(candidates, apiContiguousRe.FindAllString(normalized, -1)...)
	if len(candidates) == 0 {
		return "", false
	}

	seen := make(map[string]struct{}, len(candidates))
	ordered := make([]string, 0, len(candidates))
	for _, digits := range candidates {
		if _, ok := seen[digits]; ok {
			continue
		}
		seen[digits] = struct{}{}
		ordered = append(ordered, digits)
	}
	// prefer longer runs; stable sort keeps text order among equals
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})

	for _, digits := range ordered {
		if formatted, ok := FormatAPINumber(digits); ok {
			return formatted, true
		}
	}
	return "", false
}

// FormatAPINumber hyphenates a digit run at the offsets determined solely by
// its length: 2-3-5 for 10 digits, 2-3-5-2 for 12, 2-3-5-2-2 for 14.
func FormatAPINumber(digits string) (string, bool) {
	switch len(digits) {
	case 10:
		return digits[:2] + "-" + digits[2:5] + "-" + digits[5:], true
	case 12:
		return digits[:2] + "-" + digits[2:5] + "-" + digits[5:10] + "-" + digits[10:], true
	case 14:
		return digits[:2] + "-" + digits[2:5] + "-" + digits[5:10] + "-" + digits[10:12] + "-" + digits[12:], true
	}
	return "", false
}
