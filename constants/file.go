package constants

import "strings"

// AllowedExtensions holds the file extensions the batch scanner picks up.
// The report archive is PDF-only; scanned pages arrive wrapped in PDF
// containers rather than as loose images.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether a path extension is recognized for ingestion.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}
