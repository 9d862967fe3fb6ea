package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFileScoped_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(p, []byte("hello"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	b, err := ReadFileScoped(p)
	if err != nil {
		t.Fatalf("ReadFileScoped error: %v", err)
	}
	if string(b) != "hello" {
		t.Fatalf("unexpected content: %q", string(b))
	}
}

func TestReadFileScoped_RejectsInvalidPath(t *testing.T) {
	for _, p := range []string{"", ".", string(filepath.Separator)} {
		if _, err := ReadFileScoped(p); err == nil {
			t.Fatalf("expected error for %q", p)
		}
	}
}

func TestWriteFileAtomic_CreatesParentAndWrites(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".cargo", "config.toml")

	if err := WriteFileAtomic(p, []byte("[build]\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic error: %v", err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "[build]\n" {
		t.Fatalf("unexpected content: %q", string(b))
	}
}

func TestWriteFileAtomic_OverwritesWholeFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(p, []byte("a much longer original payload"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := WriteFileAtomic(p, []byte("short"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic error: %v", err)
	}

	b, _ := os.ReadFile(p)
	if string(b) != "short" {
		t.Fatalf("expected whole-file overwrite, got %q", string(b))
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("expected only the target file, found %d entries", len(entries))
	}
}

func TestWriteFileAtomic_ParentIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, ".cargo")
	if err := os.WriteFile(blocker, []byte("not a dir"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := WriteFileAtomic(filepath.Join(blocker, "config.toml"), []byte("x"), 0o644)
	if err == nil {
		t.Fatal("expected error when parent path is a regular file")
	}
}

func TestWriteFileAtomic_FailureLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.toml")
	if err := os.MkdirAll(filepath.Join(p, "occupied"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := WriteFileAtomic(p, []byte("[build]\n"), 0o644); err == nil {
		t.Fatalf("expected error writing over a non-empty directory")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "config.toml" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("unexpected leftovers: %v", names)
	}
}
