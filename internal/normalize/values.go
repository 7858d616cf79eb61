package normalize

import (
	"log/slog"

	"github.com/enseco-data/wellstim/internal/fields"
)

// Defaults substituted for missing defaultable fields just before
// persistence. Identity fields never receive them.
const (
	StringMissingDefault  = "N/A"
	NumericMissingDefault = 0
)

// Fields coerces the raw string map into typed values keyed by field
// name. Fields whose value fails coercion (or cleans to empty) are
// dropped, not defaulted; that happens later in ApplyDefaults.
func Fields(raw map[string]string, table fields.Table) map[string]any {
	out := make(map[string]any, len(raw))
	for _, f := range table {
		s, ok := raw[f.Name]
		if !ok {
			continue
		}
		switch f.Kind {
		case fields.String:
			if v := LimitLength(CleanString(s), f.MaxLen); v != "" {
				out[f.Name] = v
			}
		case fields.API:
			if v := LimitLength(CanonicalizeAPI(s), f.MaxLen); v != "" {
				out[f.Name] = v
			}
		case fields.Float:
			if v, ok := ParseFloat(s); ok {
				out[f.Name] = v
			} else {
				slog.Debug("numeric coercion failed", "field", f.Name, "value", s)
			}
		case fields.Int:
			if v, ok := ParseInt(s); ok {
				out[f.Name] = v
			} else {
				slog.Debug("integer coercion failed", "field", f.Name, "value", s)
			}
		case fields.Date:
			if v, ok := ParseDate(s); ok {
				out[f.Name] = v
			} else {
				slog.Debug("date coercion failed", "field", f.Name, "value", s)
			}
		}
	}
	return out
}

// ApplyDefaults fills the standard defaults for defaultable fields that
// are still missing after coercion. Identity fields (well API,
// stimulation date) are exempt: a missing identity must stay missing so
// identity resolution can react to it. Non-identity date fields get no
// default either; there is no sensible sentinel date.
func ApplyDefaults(values map[string]any, table fields.Table) map[string]any {
	out := make(map[string]any, len(table))
	for k, v := range values {
		out[k] = v
	}
	for _, f := range table {
		if f.Identity {
			continue
		}
		if _, ok := out[f.Name]; ok {
			continue
		}
		switch f.Kind {
		case fields.String, fields.API:
			out[f.Name] = StringMissingDefault
		case fields.Float:
			out[f.Name] = float64(NumericMissingDefault)
		case fields.Int:
			out[f.Name] = int64(NumericMissingDefault)
		}
	}
	return out
}
