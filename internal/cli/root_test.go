package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withStdin(t *testing.T, input string) {
	t.Helper()
	prev := Stdin
	Stdin = strings.NewReader(input)
	t.Cleanup(func() { Stdin = prev })
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}
	for _, tt := range tests {
		withStdin(t, tt.input)
		if got := Confirm("ok?"); got != tt.want {
			t.Errorf("Confirm with %q = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "body.txt")
	if err := os.WriteFile(path, []byte("from file"), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := ReadInput("literal", path)
	if err != nil || got != "literal" {
		t.Errorf("literal = %q, %v", got, err)
	}
	if got, _ := ReadInput("", path); got != "from file" {
		t.Errorf("file = %q", got)
	}

	withStdin(t, "from stdin")
	if got, _ := ReadInput("", "-"); got != "from stdin" {
		t.Errorf("stdin = %q", got)
	}

	if got, err := ReadInput("", ""); got != "" || err != nil {
		t.Errorf("empty = %q, %v", got, err)
	}
	if _, err := ReadInput("", filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}
