package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// Location is a user-supplied path split into directory and file name
type Location struct {
	Dir  string
	Name string
}

// Resolve splits arg on "/". The last component is the file name and the
// rest, with a trailing slash, is the directory. Without a slash the
// directory is ".".
func Resolve(arg string) Location {
	parts := strings.Split(arg, "/")
	loc := Location{Dir: ".", Name: parts[len(parts)-1]}
	if len(parts) > 1 {
		loc.Dir = strings.Join(parts[:len(parts)-1], "/") + "/"
	}
	return loc
}

// Path returns the path used to open the file
func (l Location) Path() string {
	return filepath.Join(l.Dir, l.Name)
}

// Exists lists Dir and reports whether it holds a regular file named Name.
// Symlinks are followed. A missing directory reports false with no error.
func Exists(loc Location) (bool, error) {
	if loc.Name == "" {
		return false, nil
	}
	entries, err := os.ReadDir(loc.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return false, nil
		}
		return false, fmt.Errorf("list %s: %w", loc.Dir, err)
	}
	for _, entry := range entries {
		if entry.Name() != loc.Name {
			continue
		}
		if entry.Type().IsRegular() {
			return true, nil
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(loc.Path())
			if err != nil {
				return false, nil
			}
			return info.Mode().IsRegular(), nil
		}
		return false, nil
	}
	return false, nil
}
