// Package exercise discovers exercises on disk and decides whether each one
// looks done.
//
// An exercise is a source file. It looks done once the NotDoneMarker line
// has been removed from it.
package exercise

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Kartik213/rustlings/internal/ports"
)

// NotDoneMarker is the text whose presence marks an exercise as unsolved.
const NotDoneMarker = "I AM NOT DONE"

// File is an exercise backed by a single source file.
type File struct {
	path string
	name string
}

// NewFile returns the exercise stored at path.
func NewFile(path string) *File {
	base := filepath.Base(path)
	return &File{path: path, name: strings.TrimSuffix(base, filepath.Ext(base))}
}

// Name returns the file name without extension.
func (f *File) Name() string { return f.name }

// Path returns the source file path.
func (f *File) Path() string { return f.path }

// LooksDone reports whether the marker is gone. Unreadable files are not done.
func (f *File) LooksDone() bool {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return false
	}
	return !containsMarker(b)
}

func containsMarker(b []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "//") {
			continue
		}
		if strings.TrimSpace(strings.TrimLeft(line, "/")) == NotDoneMarker {
			return true
		}
	}
	// Fall back to a plain search if a line was too long to scan.
	return sc.Err() != nil && bytes.Contains(b, []byte(NotDoneMarker))
}

// Scan walks dir and returns every regular file with extension ext, sorted
// by path.
func Scan(dir, ext string) ([]ports.Exercise, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && filepath.Ext(path) == ext {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan exercises in %s: %w", dir, err)
	}

	sort.Strings(paths)
	out := make([]ports.Exercise, 0, len(paths))
	for _, p := range paths {
		out = append(out, NewFile(p))
	}
	return out, nil
}

// IsExercise reports whether path has the exercise extension.
func IsExercise(path, ext string) bool {
	return filepath.Ext(path) == ext
}
