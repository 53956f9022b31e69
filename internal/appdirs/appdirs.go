// Package appdirs lists the application directories to watch.
package appdirs

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/samber/lo"
)

// ApplicationDirs returns override when it is not empty and the
// platform application directories otherwise. Order is preserved and
// duplicates are dropped.
func ApplicationDirs(override []string) []string {
	dirs := override
	if len(dirs) == 0 {
		dirs = xdg.ApplicationDirs
	}

	return normalize(dirs)
}

func normalize(dirs []string) []string {
	dirs = lo.FilterMap(dirs, func(dir string, _ int) (string, bool) {
		if dir == "" {
			return "", false
		}

		abs, err := filepath.Abs(dir)
		if err != nil {
			return filepath.Clean(dir), true
		}
		return abs, true
	})

	return lo.Uniq(dirs)
}
