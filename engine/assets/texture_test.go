package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

// twoRows is a 2x2 image with a red top row and a blue bottom row.
func twoRows() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		img.Set(x, 0, red)
		img.Set(x, 1, blue)
	}
	return img
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, twoRows()); err != nil {
		t.Fatal(err)
	}
}

func TestLoadTextureFormats(t *testing.T) {
	dir := t.TempDir()
	encoders := map[string]func(*os.File, image.Image) error{
		"img.png":  func(f *os.File, img image.Image) error { return png.Encode(f, img) },
		"img.bmp":  func(f *os.File, img image.Image) error { return bmp.Encode(f, img) },
		"img.tiff": func(f *os.File, img image.Image) error { return tiff.Encode(f, img, nil) },
	}
	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			f, err := os.Create(path)
			if err != nil {
				t.Fatal(err)
			}
			if err := encode(f, twoRows()); err != nil {
				t.Fatal(err)
			}
			f.Close()

			tex, err := LoadTexture(path, false)
			if err != nil {
				t.Fatalf("LoadTexture: %v", err)
			}
			if tex.Width != 2 || tex.Height != 2 || len(tex.Pixels) != 16 {
				t.Fatalf("size = %dx%d (%d bytes)", tex.Width, tex.Height, len(tex.Pixels))
			}
			if got := tex.At(0, 0); got != [4]uint8{255, 0, 0, 255} {
				t.Errorf("top left = %v, want red", got)
			}
			if got := tex.At(1, 1); got != [4]uint8{0, 0, 255, 255} {
				t.Errorf("bottom right = %v, want blue", got)
			}
		})
	}
}

func TestLoadTextureFlipY(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flip.png")
	writePNG(t, path)

	tex, err := LoadTexture(path, true)
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if got := tex.At(0, 0); got != [4]uint8{0, 0, 255, 255} {
		t.Errorf("first row = %v, want blue", got)
	}
	if got := tex.At(0, 1); got != [4]uint8{255, 0, 0, 255} {
		t.Errorf("last row = %v, want red", got)
	}
}

func TestNewTextureFromSubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(2, 2, red)
	sub := img.SubImage(image.Rect(2, 2, 4, 4))

	tex := NewTexture(sub, false)
	if tex.Width != 2 || tex.Height != 2 {
		t.Fatalf("size = %dx%d", tex.Width, tex.Height)
	}
	if got := tex.At(0, 0); got != [4]uint8{255, 0, 0, 255} {
		t.Errorf("origin = %v, want red", got)
	}
}

func TestLoadTextureErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadTexture(filepath.Join(dir, "missing.png"), false); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("missing file: got %v", err)
	}
	garbage := filepath.Join(dir, "garbage.png")
	writeFile(t, garbage, "definitely not an image")
	if _, err := LoadTexture(garbage, false); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("garbage file: got %v", err)
	}
}
