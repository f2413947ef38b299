package controllers

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRemoveTempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.wav")
	if err := os.WriteFile(path, []byte("RIFF"), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	removeTempFile(path)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("partial upload must be removed")
	}

	// Removal of an already-missing file must not panic or complain
	removeTempFile(path)
}
