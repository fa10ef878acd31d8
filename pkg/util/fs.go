package util

import (
	"io/fs"
	"path/filepath"
)

// DirSize walks the directory tree rooted at path and returns the total
// size in bytes of all regular files under it. Entries that cannot be
// listed or stat'ed are skipped rather than failing the walk; a missing or
// unreadable root is still an error.
func DirSize(path string) (uint64, error) {
	var total uint64

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == path {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		total += uint64(info.Size())

		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}
