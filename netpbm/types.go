package netpbm

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for Netpbm I/O.
var (
	// ErrFormat indicates an unknown or unexpected magic number.
	ErrFormat = errors.New("netpbm: invalid file format")
	// ErrHeader indicates a malformed width, height or maxval.
	ErrHeader = errors.New("netpbm: invalid header")
	// ErrPixel indicates an invalid pixel sample.
	ErrPixel = errors.New("netpbm: invalid pixel value")
	// ErrTruncated indicates the input ended before the raster did.
	ErrTruncated = errors.New("netpbm: not enough image data")
	// ErrNotBilevel indicates a PBM write of an image without exactly two colours.
	ErrNotBilevel = errors.New("netpbm: PBM requires exactly two colours")
)

// Format identifies a Netpbm variant by its magic number.
type Format string

const (
	PlainPBM Format = "P1"
	PlainPPM Format = "P3"
	RawPBM   Format = "P4"
	RawPPM   Format = "P6"
)

// MaxPixels is the largest width×height accepted from a header; larger
// headers fail with ErrHeader before any allocation.
const MaxPixels = 1 << 26

// maxMaxVal is the largest maxval stored in one byte per sample.
const maxMaxVal = 255

// IsBitmap reports whether f is a PBM variant.
func (f Format) IsBitmap() bool {
	return f == PlainPBM || f == RawPBM
}

// Ext returns the conventional file extension for f, with the dot.
func (f Format) Ext() string {
	if f.IsBitmap() {
		return ".pbm"
	}
	return ".ppm"
}

// ParseFormat accepts a magic number ("P4") or a name: "pbm" (raw PBM),
// "ppm" (plain PPM, as the reference tools write it) or "ppm-raw".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "p1":
		return PlainPBM, nil
	case "p3", "ppm":
		return PlainPPM, nil
	case "p4", "pbm":
		return RawPBM, nil
	case "p6", "ppm-raw":
		return RawPPM, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, s)
}
