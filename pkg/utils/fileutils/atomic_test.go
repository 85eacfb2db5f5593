package fileutils

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWriteReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	if err := os.WriteFile(path, []byte("old content"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := AtomicWrite(path, 0o644, func(w io.Writer) error {
		_, err := io.WriteString(w, "new")
		return err
	})
	if err != nil {
		t.Fatalf("AtomicWrite: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected temp file cleanup, found %d entries", len(entries))
	}
}

func TestAtomicWriteKeepsOriginalOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	if err := os.WriteFile(path, []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err := AtomicWrite(path, 0o644, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("AtomicWrite error = %v, want %v", err, boom)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "keep" {
		t.Errorf("content = %q, want original", got)
	}
}

func TestSize(t *testing.T) {
	dir := t.TempDir()

	exists, size, err := Size(filepath.Join(dir, "missing"))
	if err != nil || exists || size != 0 {
		t.Errorf("Size(missing) = %v, %d, %v", exists, size, err)
	}

	path := filepath.Join(dir, "f")
	if err := os.WriteFile(path, []byte("abc"), 0o644); err != nil {
		t.Fatal(err)
	}
	exists, size, err = Size(path)
	if err != nil || !exists || size != 3 {
		t.Errorf("Size(f) = %v, %d, %v", exists, size, err)
	}

	if !DirExists(dir) || DirExists(path) {
		t.Error("DirExists returned wrong answer")
	}
}
