package canvas

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG writes the current frame to path, replacing any existing file.
func (c *Canvas) SavePNG(path string) error {
	return SaveImagePNG(path, c.img)
}

// Snapshot copies the current frame so it can be encoded while the canvas
// keeps drawing.
func (c *Canvas) Snapshot() *image.RGBA {
	img := image.NewRGBA(c.img.Rect)
	copy(img.Pix, c.img.Pix)
	return img
}

func SaveImagePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("could not encode %s: %w", path, err)
	}
	return f.Close()
}
