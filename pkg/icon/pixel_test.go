package icon

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPixelPNG(t *testing.T) {
	data, err := PixelPNG()
	if err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("placeholder is not a valid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("placeholder bounds = %v, want 1x1", b)
	}
}

func TestWritePixelIdenticalAcrossSizes(t *testing.T) {
	dir := t.TempDir()

	want, err := PixelPNG()
	if err != nil {
		t.Fatal(err)
	}

	for _, size := range DefaultSizes {
		path := filepath.Join(dir, Filename(size))
		if err := WritePixel(path); err != nil {
			t.Fatalf("WritePixel(%s): %v", path, err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("%s differs from the fixed reference bytes", Filename(size))
		}
	}
}

func TestWritePixelIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon16.png")

	if err := WritePixel(path); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := WritePixel(path); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("re-running produced different bytes")
	}
}
