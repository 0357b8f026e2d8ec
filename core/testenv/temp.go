package testenv

import (
	"path/filepath"
	"testing"
)

// TempName creates a filename in a per-test temporary directory.
// The directory and contained files are deleted during test cleanup.
func TempName(t testing.TB, name ...string) (filename string) {
	filename = "temp"
	if len(name) > 0 {
		filename = name[0]
	}
	return filepath.Join(t.TempDir(), filename)
}
