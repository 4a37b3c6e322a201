package imagergb

import (
	"fmt"
	"image"
)

// NewChess returns a width×height chess pattern of edge×edge squares.
// The square containing pixel (0,0) gets colour fg; alternating squares keep
// the WHITE background.
// Complexity: O(W·H).
func NewChess(width, height, edge int, fg RGB, opts ...Option) (*Image, error) {
	if edge <= 0 {
		return nil, fmt.Errorf("NewChess(edge=%d): %w", edge, ErrInvalidEdge)
	}
	img, err := New(width, height, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewChess: %w", err)
	}
	label, err := img.AllocColor(fg)
	if err != nil {
		return nil, fmt.Errorf("NewChess: %w", err)
	}

	for v := 0; v < height; v++ {
		row := v / edge
		for u := 0; u < width; u++ {
			col := u / edge
			if (row+col)%2 == 0 {
				img.pix[v*width+u] = label
			}
		}
	}
	return img, nil
}

// NewPalette returns an image whose colour table is filled to capacity with
// the NextColor sequence (starting after BLACK) and whose edge×edge tiles
// cycle through those labels in row-major order.
// Complexity: O(W·H + capacity).
func NewPalette(width, height, edge int, opts ...Option) (*Image, error) {
	if edge <= 0 {
		return nil, fmt.Errorf("NewPalette(edge=%d): %w", edge, ErrInvalidEdge)
	}
	img, err := New(width, height, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewPalette: %w", err)
	}

	c := Black
	for !img.Full() {
		c = NextColor(c)
		img.lut = append(img.lut, c)
	}

	capacity := cap(img.lut)
	wtiles := width / edge
	for v := 0; v < height; v++ {
		row := v / edge
		for u := 0; u < width; u++ {
			col := u / edge
			img.pix[v*width+u] = Label((row*wtiles + col) % capacity)
		}
	}
	return img, nil
}

// FromImage converts any image.Image into an indexed image, allocating one
// colour table entry per distinct opaque RGB value (alpha is ignored).
// It returns ErrLUTFull when the source has more colours than the capacity.
// Complexity: O(W·H·C) with C the number of distinct colours.
func FromImage(src image.Image, opts ...Option) (*Image, error) {
	b := src.Bounds()
	img, err := New(b.Dx(), b.Dy(), opts...)
	if err != nil {
		return nil, fmt.Errorf("FromImage: %w", err)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			l, err := img.AllocColor(FromColor(src.At(x, y)))
			if err != nil {
				return nil, fmt.Errorf("FromImage: pixel (%d,%d): %w", x-b.Min.X, y-b.Min.Y, err)
			}
			img.pix[(y-b.Min.Y)*img.width+(x-b.Min.X)] = l
		}
	}
	return img, nil
}
