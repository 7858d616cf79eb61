package fields

import (
	"regexp"
	"strings"
)

// latLongRe catches the frequent single-line "Latitude: x Longitude: y"
// layout; when it hits, it overrides whatever the independent cascades
// found for either coordinate.
var latLongRe = regexp.MustCompile(`(?is)Latitude[:#\s-]+(-?\d+\.\d+).{0,40}?Longitude[:#\s-]+(-?\d+\.\d+)`)

// Extract runs every cascade in the table over text. Absent fields have
// no key in the result; an empty string never appears as a value.
func Extract(text string, table Table) map[string]string {
	text = normalizeText(text)
	out := make(map[string]string, len(table))
	for _, f := range table {
		if f.Block {
			if block, ok := extractBlock(text, f.Name); ok {
				out[f.Name] = block
				continue
			}
		}
		if v, ok := firstMatch(text, f.Patterns); ok {
			out[f.Name] = v
		}
	}
	return out
}

// ExtractWell runs the well cascades plus the two well-specific
// refinements: the combined latitude/longitude line and the API-number
// recovery heuristic for when the cascade comes up empty.
func ExtractWell(text string, table Table) map[string]string {
	normalized := normalizeText(text)
	out := Extract(normalized, table)

	if m := latLongRe.FindStringSubmatch(normalized); m != nil {
		out["latitude"] = m[1]
		out["longitude"] = m[2]
	}

	if out["api"] == "" {
		if api, ok := RecoverAPINumber(normalized); ok {
			out["api"] = api
		} else {
			delete(out, "api")
		}
	}
	return out
}

// ExtractStimulation runs the stimulation cascades; the multi-line
// details block is handled by the table's Block flag.
func ExtractStimulation(text string, table Table) map[string]string {
	return Extract(text, table)
}

func firstMatch(text string, patterns []string) (string, bool) {
	for _, p := range patterns {
		m := compile(p).FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v := strings.TrimSpace(m[1]); v != "" {
			return v, true
		}
	}
	return "", false
}

// extractBlock captures everything after the label up to (not
// including) the next line that starts with a capitalized label-like
// token and a separator, or to end of text. The label match stays
// case-insensitive but the boundary token must be capitalized.
func extractBlock(text, label string) (string, bool) {
	quoted := regexp.QuoteMeta(label)
	bounded := compileRaw(`(?i:` + quoted + `)[:#\s-]+(?s:(.+?))` + "\n" + `[A-Z][^\n]{0,40}[:#\s-]`)
	if m := bounded.FindStringSubmatch(text); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			return v, true
		}
	}
	open := compileRaw(`(?i:` + quoted + `)[:#\s-]+(?s:(.+))`)
	if m := open.FindStringSubmatch(text); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			return v, true
		}
	}
	return "", false
}

// compileRaw caches a pattern without the implicit (?i) prefix.
func compileRaw(p string) *regexp.Regexp {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if re, ok := cache[p]; ok {
		return re
	}
	re := regexp.MustCompile(p)
	cache[p] = re
	return re
}

// normalizeText drops carriage returns so the cascades only ever see
// unix line endings.
func normalizeText(text string) string {
	return strings.ReplaceAll(text, "\r", "")
}
