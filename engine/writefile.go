package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cocosip/go-compengine/common"
)

// writeFileAtomic writes data to a temporary file in path's directory and
// renames it over path. On any error the temporary file is removed and
// path is left untouched.
func writeFileAtomic(path string, data []byte) (err error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+name+".tmp*")
	if err != nil {
		return fmt.Errorf("create %s: %v: %w", path, err, common.ErrWrite)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	// CreateTemp uses 0600
	if err = f.Chmod(0o644); err != nil {
		f.Close()
		return fmt.Errorf("chmod %s: %v: %w", tmp, err, common.ErrWrite)
	}
	if _, err = f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %v: %w", tmp, err, common.ErrWrite)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %v: %w", tmp, err, common.ErrWrite)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %v: %w", path, err, common.ErrWrite)
	}
	return nil
}
