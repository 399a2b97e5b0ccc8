package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRunWithoutArgsPrintsUsage(t *testing.T) {
	for _, args := range [][]string{nil, {}} {
		var stdout, stderr bytes.Buffer
		if code := run(args, &stdout, &stderr); code != 1 {
			t.Errorf("exit code %d, want 1", code)
		}
		if !strings.HasPrefix(stdout.String(), "Usage:") {
			t.Errorf("expected usage on stdout, got %q", stdout.String())
		}
		if stderr.Len() != 0 {
			t.Errorf("unexpected stderr output %q", stderr.String())
		}
	}
}

func TestRunValidAndMissingPaths(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.png")
	missing := filepath.Join(dir, "missing.png")

	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := 0; i < len(src.Pix); i += 4 {
		copy(src.Pix[i:], []uint8{0, 0, 0, uint8(40 * i / 4)})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(valid, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{valid, missing}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, want 0", code)
	}
	if n := strings.Count(stderr.String(), "Skipping"); n != 1 || !strings.Contains(stderr.String(), missing) {
		t.Errorf("expected one skip notice for %s:\n%s", missing, stderr.String())
	}
	if n := strings.Count(stdout.String(), "Processed"); n != 1 || !strings.Contains(stdout.String(), valid) {
		t.Errorf("expected one confirmation for %s:\n%s", valid, stdout.String())
	}
	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Error("a file was created at the missing path")
	}

	f, err := os.Open(valid)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			p := color.NRGBAModel.Convert(got.At(x, y)).(color.NRGBA)
			if p.A != src.NRGBAAt(x, y).A {
				t.Errorf("(%d,%d): alpha %d, want %d", x, y, p.A, src.NRGBAAt(x, y).A)
			}
			if p.A != 0 && (p.R != 255 || p.G != 255 || p.B != 255) {
				t.Errorf("(%d,%d): not white: %v", x, y, p)
			}
		}
	}
}

func TestRunInvalidImageExitsZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readme.txt")
	original := []byte("hello")
	if err := os.WriteFile(path, original, 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{path}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, want 0", code)
	}
	if !strings.Contains(stderr.String(), path) {
		t.Errorf("error message should name %s:\n%s", path, stderr.String())
	}
	if data, _ := os.ReadFile(path); !bytes.Equal(data, original) {
		t.Errorf("file changed to %q", data)
	}
}

func TestRunTreatsDashArgsAsPaths(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--help"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, want 0", code)
	}
	if !strings.Contains(stderr.String(), "Skipping") {
		t.Errorf("expected --help to be skipped as a path:\n%s", stderr.String())
	}
}

func TestRunTreatsCompletionCommandsAsPaths(t *testing.T) {
	for _, name := range []string{cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "a.png")
			var buf bytes.Buffer
			if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
				t.Fatal(err)
			}

			var stdout, stderr bytes.Buffer
			if code := run([]string{name, path}, &stdout, &stderr); code != 0 {
				t.Fatalf("exit code %d, want 0", code)
			}
			if !strings.Contains(stderr.String(), "Skipping") || !strings.Contains(stderr.String(), name) {
				t.Errorf("expected %s to be skipped as a path:\n%s", name, stderr.String())
			}
			if !strings.Contains(stdout.String(), "Processed") || !strings.Contains(stdout.String(), path) {
				t.Errorf("expected %s to be processed:\n%s", path, stdout.String())
			}
		})
	}
}
