package main

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"
	"testing"

	"minicat/config"
	"minicat/minimap"
	"minicat/syntax"
)

// pipeWriter fails every write the way a closed stdout pipe does once
// SIGPIPE is ignored.
type pipeWriter struct{}

func (pipeWriter) Write([]byte) (int, error) {
	return 0, &fs.PathError{Op: "write", Path: "/dev/stdout", Err: syscall.EPIPE}
}

func TestBrokenPipe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"raw EPIPE", syscall.EPIPE, true},
		{"wrapped in PathError", &fs.PathError{Op: "write", Path: "/dev/stdout", Err: syscall.EPIPE}, true},
		{"other error", errors.New("disk full"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := brokenPipe(tt.err); got != tt.want {
				t.Errorf("brokenPipe(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestPrintSurfacesBrokenPipe(t *testing.T) {
	// With SIGPIPE ignored, a reader exiting early turns into a plain
	// EPIPE write error that the main loop recognizes and treats as a
	// quiet stop rather than a per-file failure.
	p := minimap.NewPrinter(minimap.Options{
		TabWidth: minimap.DefaultTabWidth,
		Mode:     config.ColorNone,
		Palette:  minimap.NewPalette(config.DefaultTheme().Syntax),
	})

	err := p.Print(pipeWriter{}, []byte("some content\n"), syntax.Plaintext(), syntax.ChromaClassifier{})
	if err == nil {
		t.Fatal("Print() returned nil, want write error")
	}
	if !brokenPipe(err) {
		t.Errorf("Print() error %v not recognized as a broken pipe", err)
	}
}

func TestListThemesHonorsColorMode(t *testing.T) {
	var plain strings.Builder
	listThemes(&plain, config.ColorNone)
	if strings.Contains(plain.String(), "\033[") {
		t.Errorf("--color never listing contains escapes: %q", plain.String())
	}
	for _, name := range config.ThemeNames() {
		if !strings.Contains(plain.String(), name) {
			t.Errorf("listing missing theme %q", name)
		}
	}

	var colored strings.Builder
	listThemes(&colored, config.Color256)
	if !strings.Contains(colored.String(), "\033[") {
		t.Error("256-color listing has no escapes")
	}
	if strings.Contains(colored.String(), "\033[38;2;") {
		t.Errorf("256-color listing uses truecolor escapes: %q", colored.String())
	}

	var truecolor strings.Builder
	listThemes(&truecolor, config.ColorTrueColor)
	if !strings.Contains(truecolor.String(), "\033[38;2;") {
		t.Error("truecolor listing has no 24-bit escapes")
	}
}
