package imagergb

import (
	"fmt"
	"image/color"
)

// RGB is a 24-bit colour packed as 0xRRGGBB.
type RGB uint32

const (
	// White is the background colour (label 0).
	White RGB = 0xffffff
	// Black is the foreground colour (label 1).
	Black RGB = 0x000000

	rgbMask = 0xffffff
	// colorStep is the increment of the deterministic colour sequence.
	colorStep = 7639
)

// RGBOf packs three 8-bit channels.
func RGBOf(r, g, b uint8) RGB {
	return RGB(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromColor converts any color.Color to RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGBOf(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// R returns the red channel.
func (c RGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c RGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c RGB) B() uint8 { return uint8(c) }

// RGBA implements color.Color as an opaque colour.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xffff
}

// String formats the colour as "0xrrggbb".
func (c RGB) String() string {
	return fmt.Sprintf("0x%06x", uint32(c)&rgbMask)
}

// NextColor returns the pseudo-random successor of c:
// (c + 7639) mod 2^24. Starting from Black it enumerates every 24-bit colour.
func NextColor(c RGB) RGB {
	return (c + colorStep) & rgbMask
}
