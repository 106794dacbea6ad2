package gradpick

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Pixmap is a rectangular buffer of non-premultiplied RGBA pixels.
// It implements image.Image.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel
}

// NewPixmap creates a transparent pixmap with the given dimensions.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel replaces a single pixel. Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// BlendPixel composites c over the existing pixel (source-over).
func (p *Pixmap) BlendPixel(x, y int, c Color) {
	if c.A == 255 {
		p.SetPixel(x, y, c)
		return
	}
	if c.A == 0 || x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	dst := p.GetPixel(x, y)
	sa := float64(c.A) / 255
	da := float64(dst.A) / 255
	oa := sa + da*(1-sa)
	mix := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / oa
		return uint8(v + 0.5)
	}
	p.SetPixel(x, y, Color{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: uint8(oa*255 + 0.5),
	})
}

// GetPixel returns a single pixel, or Transparent when out of bounds.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// FillRect composites c over every pixel of r clipped to the pixmap.
func (p *Pixmap) FillRect(r image.Rectangle, c Color) {
	r = r.Intersect(p.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p.BlendPixel(x, y, c)
		}
	}
}

// StrokeRect draws a one-pixel outline along the inside of r.
func (p *Pixmap) StrokeRect(r image.Rectangle, c Color) {
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		p.BlendPixel(x, r.Min.Y, c)
		p.BlendPixel(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y + 1; y < r.Max.Y-1; y++ {
		p.BlendPixel(r.Min.X, y, c)
		p.BlendPixel(r.Max.X-1, y, c)
	}
}

// ToImage copies the pixmap into an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// ImageFormat selects the encoder used by Encode.
type ImageFormat int

const (
	// FormatPNG encodes lossless PNG.
	FormatPNG ImageFormat = iota
	// FormatBMP encodes a Windows bitmap.
	FormatBMP
	// FormatTIFF encodes TIFF.
	FormatTIFF
)

// FormatFromPath picks the image format from a file extension.
func FormatFromPath(path string) (ImageFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: unsupported image extension %q", ErrInvalidFormat, filepath.Ext(path))
	}
}

// Encode writes the pixmap in the given format.
func (p *Pixmap) Encode(w io.Writer, f ImageFormat) error {
	img := p.ToImage()
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: image format %d", ErrInvalidFormat, f)
	}
}

// Save writes the pixmap to path, choosing the format by extension.
func (p *Pixmap) Save(path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.Encode(file, f); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
