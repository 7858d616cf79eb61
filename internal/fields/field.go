// Package fields maps extracted report text to raw candidate values.
//
// Every logical field is described by one table row: an ordered pattern
// cascade, a value kind for downstream coercion, a length bound, and
// whether the field carries record identity. The same tables drive
// extraction, normalization, and default substitution.
package fields

import (
	"regexp"
	"sync"
)

// Kind describes how a raw match is coerced downstream.
type Kind int

const (
	String Kind = iota
	Float
	Int
	Date
	// API is a string that additionally gets identifier canonicalization.
	API
)

// Field is one row of a pattern table.
type Field struct {
	Name string
	Kind Kind
	// MaxLen bounds the cleaned string; 0 means unbounded.
	MaxLen int
	// Identity fields determine record uniqueness and are exempt from
	// default substitution: missing stays missing.
	Identity bool
	// Block marks a field whose value may span multiple lines; a block
	// match takes precedence over the single-line cascade.
	Block bool
	// Patterns is the cascade: case-insensitive, first capture group,
	// first non-empty match wins.
	Patterns []string
}

// Table is an ordered set of fields for one entity kind.
type Table []Field

// Lookup returns the table row for name.
func (t Table) Lookup(name string) (Field, bool) {
	for _, f := range t {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

var (
	cacheMu sync.Mutex
	cache   = map[string]*regexp.Regexp{}
)

// compile returns the case-insensitive compilation of p, cached.
// Built-in patterns are trusted; override patterns are validated with
// regexp.Compile at load time before they ever reach this path.
func compile(p string) *regexp.Regexp {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if re, ok := cache[p]; ok {
		return re
	}
	re := regexp.MustCompile("(?i)" + p)
	cache[p] = re
	return re
}
