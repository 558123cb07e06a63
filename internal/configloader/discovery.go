package configloader

import (
	"os"
	"path/filepath"
)

// configFileNames are the project config file names, in preference order.
var configFileNames = []string{
	".sqlfluff.yml",
	".sqlfluff.yaml",
}

// discoverProjectConfig walks up from startDir looking for a project
// config file. Returns the path of the first one found, or "" if none
// exists between startDir and the filesystem root.
func discoverProjectConfig(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
