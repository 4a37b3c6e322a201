package imageio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupported indicates an unknown format name or file extension.
	ErrUnsupported = errors.New("imageio: unsupported format")
	// ErrTooManyColors indicates a GIF write of a colour table larger than 256 entries.
	ErrTooManyColors = errors.New("imageio: GIF holds at most 256 colours")
)

// Format names an output encoding.
type Format string

const (
	PNG  Format = "png"
	GIF  Format = "gif"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	// PBM is raw PBM (P4); the image must have exactly two colours.
	PBM Format = "pbm"
	// PPM is plain PPM (P3).
	PPM Format = "ppm"
	// PPMRaw is raw PPM (P6).
	PPMRaw Format = "ppm-raw"
)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{PNG, GIF, JPEG, BMP, TIFF, PBM, PPM, PPMRaw}
}

var extFormats = map[string]Format{
	".png":  PNG,
	".gif":  GIF,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".bmp":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
	".pbm":  PBM,
	".ppm":  PPM,
}

// ParseFormat maps a format name (any case, "jpg" accepted) to a Format.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(s)
	if s == "jpg" {
		return JPEG, nil
	}
	for _, f := range Formats() {
		if s == string(f) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
}

// FormatOf infers the format from the extension of path.
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: extension %q", ErrUnsupported, ext)
}

// Ext returns the conventional file extension for f, with the dot.
func (f Format) Ext() string {
	if f == PPMRaw {
		return ".ppm"
	}
	return "." + string(f)
}
