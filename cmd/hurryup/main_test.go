package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/hurryup/internal/constants"
)

func TestVersionFlag(t *testing.T) {
	var out bytes.Buffer
	exited := -1
	parser, err := kong.New(&CLI, append(options(),
		kong.Writers(&out, &out),
		kong.Exit(func(code int) { exited = code }),
	)...)
	if err != nil {
		t.Fatalf("kong.New() error = %v", err)
	}

	_, _ = parser.Parse([]string{"--version"})
	if exited != 0 {
		t.Errorf("exit code = %d, want 0", exited)
	}
	if strings.TrimSpace(out.String()) != constants.Version {
		t.Errorf("--version printed %q, want %q", out.String(), constants.Version)
	}
}
