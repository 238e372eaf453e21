package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	md2latex "github.com/alnah/go-md2latex"
	"github.com/alnah/go-md2latex/internal/config"
)

// testEnv returns an environment writing to buffers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    func() time.Time { return time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
		Config: config.DefaultConfig(),
	}, &stdout, &stderr
}

// wrongTypeConverter is a CLIConverter that is NOT *md2latex.Converter.
type wrongTypeConverter struct{}

func (wrongTypeConverter) Convert(context.Context, md2latex.Input) (*md2latex.ConvertResult, error) {
	return &md2latex.ConvertResult{}, nil
}

func (wrongTypeConverter) MakeDocument(io.Writer, md2latex.Document) error { return nil }

func TestPoolAdapter_Release_WrongType(t *testing.T) {
	t.Parallel()

	pool := md2latex.NewConverterPool(1)
	defer pool.Close()
	adapter := &poolAdapter{pool: pool}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for wrong type, got none")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "unexpected type") {
			t.Errorf("panic = %v, want message with 'unexpected type'", r)
		}
	}()

	adapter.Release(wrongTypeConverter{})
}

func TestPoolAdapter_AcquireRelease(t *testing.T) {
	t.Parallel()

	pool := md2latex.NewConverterPool(3)
	defer pool.Close()
	adapter := &poolAdapter{pool: pool}

	if adapter.Size() != 3 {
		t.Errorf("Size() = %d, want 3", adapter.Size())
	}
	conv := adapter.Acquire()
	if conv == nil {
		t.Fatal("Acquire() returned nil")
	}
	adapter.Release(conv)
}

func TestPoolAdapter_InitError(t *testing.T) {
	t.Parallel()

	pool := md2latex.NewConverterPool(1, md2latex.WithAssetPath("/nonexistent/path/abc123xyz"))
	defer pool.Close()
	adapter := &poolAdapter{pool: pool}

	if conv := adapter.Acquire(); conv != nil {
		t.Fatal("Acquire() should return a nil interface on init failure")
	}
	if err := adapter.initError(); exitCodeFor(err) != ExitUsage {
		t.Errorf("initError() = %v, want usage error", err)
	}
}

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"convert", true},
		{"glossary", true},
		{"table", true},
		{"version", true},
		{"help", true},
		{"foo", false},
		{"", false},
		{"doc.md", false},
		{"Convert", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := isCommand(tt.input); got != tt.want {
				t.Errorf("isCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLooksLikeMarkdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := []struct {
		arg  string
		want bool
	}{
		{"doc.md", true},
		{"notes.markdown", true},
		{dir, true},
		{"doc.txt", false},
		{"convrt", false},
	}

	for _, tt := range tests {
		if got := looksLikeMarkdown(tt.arg); got != tt.want {
			t.Errorf("looksLikeMarkdown(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	if !hasVerboseFlag([]string{"convert", "-v", "doc.md"}) {
		t.Error("hasVerboseFlag(-v) = false")
	}
	if !hasVerboseFlag([]string{"--verbose"}) {
		t.Error("hasVerboseFlag(--verbose) = false")
	}
	if hasVerboseFlag([]string{"convert", "doc.md"}) {
		t.Error("hasVerboseFlag() = true without flag")
	}
}

func TestRunMain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mdPath := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(mdPath, []byte("# Title\n\nBody."), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no command", []string{"md2latex"}, ExitUsage, "", "Usage: md2latex"},
		{"unknown command", []string{"md2latex", "frobnicate"}, ExitUsage, "", "Unknown command: frobnicate"},
		{"version", []string{"md2latex", "version"}, ExitSuccess, "go-md2latex " + Version, ""},
		{"help", []string{"md2latex", "help"}, ExitSuccess, "Commands:", ""},
		{"help convert", []string{"md2latex", "help", "convert"}, ExitSuccess, "--standalone", ""},
		{"convert -h", []string{"md2latex", "convert", "-h"}, ExitSuccess, "Usage: md2latex convert", ""},
		{"unknown flag", []string{"md2latex", "convert", "--bogus", mdPath}, ExitUsage, "", "unknown flag"},
		{"missing input", []string{"md2latex", "convert", filepath.Join(dir, "missing.md")}, ExitIO, "", "error:"},
		{"bad workers", []string{"md2latex", "convert", "-w", "99", mdPath}, ExitUsage, "", "invalid worker count"},
		{"bad extension", []string{"md2latex", "convert", filepath.Join(dir, "x.txt")}, ExitIO, "", "error:"},
		{"implicit convert", []string{"md2latex", mdPath, "--offline", "-o", filepath.Join(dir, "out.tex")}, ExitSuccess, "Created", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			code := runMain(context.Background(), tt.args, env)
			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want substring %q", stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want substring %q", stderr, tt.wantStderr)
			}
		})
	}
}
