package graphio

import (
	"fmt"
	"path/filepath"
	"slices"
)

// Discover returns the instance files under dir (*.txt and *.json),
// sorted for a deterministic processing order.
func Discover(dir string) ([]string, error) {
	var paths []string
	for _, pattern := range []string{"*.txt", "*.json"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
		}
		paths = append(paths, matches...)
	}
	slices.Sort(paths)
	return paths, nil
}
