package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns what
// it printed.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if runErr != nil {
		t.Fatal(runErr)
	}
	return string(data)
}

func TestRunPixelPrintsBareFilenames(t *testing.T) {
	dir := t.TempDir()
	out := captureStdout(t, func() error {
		return runPixel([]string{"-o", dir})
	})

	for _, size := range []int{16, 32, 48, 128} {
		want := fmt.Sprintf("Created icon%d.png\n", size)
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
		if _, err := os.Stat(filepath.Join(dir, fmt.Sprintf("icon%d.png", size))); err != nil {
			t.Errorf("icon%d.png not written: %v", size, err)
		}
	}
	if strings.Contains(out, dir) {
		t.Errorf("status lines leak the output directory:\n%s", out)
	}
	if !strings.Contains(out, "placeholder 1x1 blue pixels") {
		t.Errorf("output missing the placeholder warning:\n%s", out)
	}
}

func TestRunGeneratePrintsPaths(t *testing.T) {
	dir := t.TempDir()
	out := captureStdout(t, func() error {
		return run([]string{"-o", dir, "--sizes", "16,32"})
	})

	for _, size := range []int{16, 32} {
		want := fmt.Sprintf("Created %s\n", filepath.Join(dir, fmt.Sprintf("icon%d.png", size)))
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "All icon files created successfully!") {
		t.Errorf("output missing the summary line:\n%s", out)
	}
}
