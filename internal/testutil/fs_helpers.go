// Package testutil provides test utilities and helpers for notifier tests.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// PNGBytes returns a small valid PNG image.
func PNGBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 88, G: 86, B: 214, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

// CreateTempPNG writes a small PNG to dir/name and returns its path.
func CreateTempPNG(t *testing.T, dir, name string) string {
	t.Helper()
	return CreateTempFile(t, dir, name, PNGBytes(t))
}

// CreateTempFile writes content to dir/name, creating dir as needed.
func CreateTempFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
