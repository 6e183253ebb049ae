package assets

import (
	"errors"
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	"github.com/spaghettifunk/kiln/engine/core"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture is a decoded image in tightly packed RGBA8, rows top to bottom
// unless loaded flipped.
type Texture struct {
	Width  int
	Height int
	Pixels []uint8
}

// LoadTexture decodes PNG, JPEG, GIF, BMP, TIFF or WebP files. With flipY the
// first row of Pixels is the bottom row of the image, which is what OpenGL
// texture coordinates expect.
func LoadTexture(path string, flipY bool) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
		}
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	tex := NewTexture(img, flipY)
	core.Logger().Debug("texture loaded", "path", path, "format", format, "width", tex.Width, "height", tex.Height)
	return tex, nil
}

// NewTexture converts any image into a Texture.
func NewTexture(img image.Image, flipY bool) *Texture {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	tex := &Texture{Width: b.Dx(), Height: b.Dy(), Pixels: rgba.Pix}
	if flipY {
		tex.FlipY()
	}
	return tex
}

// FlipY reverses the row order in place.
func (t *Texture) FlipY() {
	stride := t.Width * 4
	row := make([]uint8, stride)
	for top, bottom := 0, t.Height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := t.Pixels[top*stride : (top+1)*stride]
		b := t.Pixels[bottom*stride : (bottom+1)*stride]
		copy(row, a)
		copy(a, b)
		copy(b, row)
	}
}

// At returns the RGBA value of the pixel at column x of stored row y.
func (t *Texture) At(x, y int) [4]uint8 {
	i := (y*t.Width + x) * 4
	return [4]uint8{t.Pixels[i], t.Pixels[i+1], t.Pixels[i+2], t.Pixels[i+3]}
}
