package pipeline

import (
	"os"
	"path/filepath"
	"strings"
)

// DiscoveredFile is a scenario file found under a portfolio directory.
type DiscoveredFile struct {
	Path string
	// Project is the path relative to the scanned directory, without extension.
	Project string
}

var scenarioExts = map[string]bool{
	".toml": true,
	".yaml": true,
	".yml":  true,
	".json": true,
}

// ScanDir walks dir and discovers every scenario file below it.
// Hidden files and directories are skipped. A missing dir yields no files.
func ScanDir(dir string) ([]DiscoveredFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var files []DiscoveredFile
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // skip unreadable entries
		}
		name := d.Name()
		if path != dir && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !scenarioExts[strings.ToLower(filepath.Ext(name))] {
			return nil
		}

		rel, _ := filepath.Rel(dir, path)
		files = append(files, DiscoveredFile{
			Path:    path,
			Project: filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel))),
		})
		return nil
	})
	return files, err
}
