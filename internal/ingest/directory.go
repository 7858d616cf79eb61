// Package ingest discovers report documents on the filesystem.
package ingest

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/enseco-data/wellstim/constants"
)

// DirStats counts what a scan saw.
type DirStats struct {
	Scanned uint32
	Matched uint32
	Failed  uint32
}

// ScanDirectory walks root recursively, keeps files with a recognized
// extension, skips hidden entries, and returns paths in sorted order so
// a batch run is reproducible.
func ScanDirectory(root string) ([]string, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var paths []string
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			stats.Failed++
			return nil // continue walking
		}
		if isHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !constants.IsAllowedExt(filepath.Ext(path)) {
			return nil
		}
		stats.Matched++
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	sort.Strings(paths)
	return paths, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
