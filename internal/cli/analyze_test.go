package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTextArg(t *testing.T) {
	if got, err := textArg("plain text"); err != nil || got != "plain text" {
		t.Errorf("literal arg = %q, %v", got, err)
	}

	path := filepath.Join(t.TempDir(), "passage.txt")
	if err := os.WriteFile(path, []byte("  from a file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := textArg("@" + path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "from a file" {
		t.Errorf("file arg = %q, want trimmed contents", got)
	}

	if _, err := textArg("@" + filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		base string
		key  string
		want string
	}{
		{"analysis", "svg", "analysis.svg"},
		{"analysis", "svg:ref", "analysis_ref.svg"},
		{"analysis", "png:comp", "analysis_comp.png"},
		{"out/run1", "dot", "out/run1.dot"},
	}

	for _, tt := range tests {
		if got := artifactPath(tt.base, tt.key); got != tt.want {
			t.Errorf("artifactPath(%q, %q) = %q, want %q", tt.base, tt.key, got, tt.want)
		}
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "result.svg") // extension is stripped

	artifacts := map[string][]byte{
		"dot:ref":  []byte("digraph {}"),
		"dot:comp": []byte("digraph {}"),
	}
	if err := writeArtifacts(base, artifacts); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"result_ref.dot", "result_comp.dot"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing artifact file %s: %v", name, err)
		}
	}
}
