package imagergb

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Image is an indexed-colour RGB raster image.
// Pixels are stored row-major: pix[v*width+u] holds the label of (u, v).
type Image struct {
	width, height int
	pix           []Label
	lut           []RGB // len == colour count, cap == capacity
}

// New returns a width×height image with every pixel set to Background and a
// colour table holding exactly WHITE (label 0) and BLACK (label 1).
// Complexity: O(W·H) time and memory.
func New(width, height int, opts ...Option) (*Image, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return nil, fmt.Errorf("New(%d, %d): %w", width, height, ErrInvalidSize)
	}
	o := buildOptions(opts)
	return newImage(width, height, o.LUTCapacity), nil
}

// newImage allocates the grid and a seeded LUT; dimensions are assumed valid.
func newImage(width, height, capacity int) *Image {
	lut := make([]RGB, 2, capacity)
	lut[Background] = White
	lut[Foreground] = Black
	return &Image{
		width:  width,
		height: height,
		pix:    make([]Label, width*height),
		lut:    lut,
	}
}

// Width returns the number of columns.
func (img *Image) Width() int { return img.width }

// Height returns the number of rows.
func (img *Image) Height() int { return img.height }

// ColorCount returns the number of colour table entries in use.
func (img *Image) ColorCount() int { return len(img.lut) }

// Capacity returns the maximum number of colour table entries.
func (img *Image) Capacity() int { return cap(img.lut) }

// IsValidPixel reports whether 0 ≤ u < Width and 0 ≤ v < Height.
// u is the column index, v the row index.
func (img *Image) IsValidPixel(u, v int) bool {
	return 0 <= u && u < img.width && 0 <= v && v < img.height
}

// Label returns the colour label of pixel (u, v).
// Panics if the pixel is outside the image.
func (img *Image) Label(u, v int) Label {
	return img.pix[img.offset(u, v)]
}

// SetLabel stores label l at pixel (u, v).
// Panics if the pixel is outside the image or l is not in the colour table.
func (img *Image) SetLabel(u, v int, l Label) {
	if int(l) >= len(img.lut) {
		panic(fmt.Sprintf("imagergb: label %d not in colour table (%d entries)", l, len(img.lut)))
	}
	img.pix[img.offset(u, v)] = l
}

// Color returns the RGB colour of label l. ok is false if l is not in the table.
func (img *Image) Color(l Label) (c RGB, ok bool) {
	if int(l) >= len(img.lut) {
		return 0, false
	}
	return img.lut[l], true
}

// PixelColor returns the RGB colour of pixel (u, v).
// Panics if the pixel is outside the image.
func (img *Image) PixelColor(u, v int) RGB {
	return img.lut[img.pix[img.offset(u, v)]]
}

// Row returns a copy of the labels of row v.
func (img *Image) Row(v int) []Label {
	if v < 0 || v >= img.height {
		panic(fmt.Sprintf("imagergb: row %d outside [0, %d)", v, img.height))
	}
	out := make([]Label, img.width)
	copy(out, img.pix[v*img.width:(v+1)*img.width])
	return out
}

// Count returns how many pixels carry label l.
func (img *Image) Count(l Label) int {
	n := 0
	for _, p := range img.pix {
		if p == l {
			n++
		}
	}
	return n
}

func (img *Image) offset(u, v int) int {
	if !img.IsValidPixel(u, v) {
		panic(fmt.Sprintf("imagergb: pixel (%d,%d) outside %dx%d image", u, v, img.width, img.height))
	}
	return v*img.width + u
}

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image: the rectangle (0,0)-(Width,Height).
func (img *Image) Bounds() image.Rectangle { return image.Rect(0, 0, img.width, img.height) }

// At implements image.Image. Pixels outside the image are transparent black.
func (img *Image) At(x, y int) color.Color {
	if !img.IsValidPixel(x, y) {
		return color.RGBA{}
	}
	return img.lut[img.pix[y*img.width+x]]
}
