package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/regiongrow/imagergb"
	"github.com/katalvlaran/regiongrow/netpbm"
)

// maxPaletted is the largest colour table stored as an image.Paletted.
const maxPaletted = 256

// Encode writes img to w in format f.
// GIF output keeps the exact colour table and fails with ErrTooManyColors
// when it has more than 256 entries.
func Encode(w io.Writer, img *imagergb.Image, f Format) error {
	switch f {
	case GIF:
		if img.ColorCount() > maxPaletted {
			return fmt.Errorf("%w: %d colours", ErrTooManyColors, img.ColorCount())
		}
		return gif.Encode(w, exportable(img), nil)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case PNG:
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		return enc.Encode(w, exportable(img))
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, nil)
	case PBM:
		return netpbm.Encode(w, img, netpbm.RawPBM)
	case PPM:
		return netpbm.Encode(w, img, netpbm.PlainPPM)
	case PPMRaw:
		return netpbm.Encode(w, img, netpbm.RawPPM)
	}
	return fmt.Errorf("%w: %q", ErrUnsupported, string(f))
}

// Save writes img to path in format f. The data goes to a temporary file in
// the same directory which replaces path only once encoding succeeded.
func Save(path string, img *imagergb.Image, f Format) (err error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	out, err := os.CreateTemp(dir, name+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", path, err)
	}
	canRename := false
	defer func() {
		if defErr := out.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", out.Name(), defErr)
		}
		if defErr := out.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", out.Name(), defErr)
		}
		if canRename && err == nil {
			if defErr := os.Rename(out.Name(), path); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", path, defErr)
			}
		}
		if err != nil {
			os.Remove(out.Name())
		}
	}()

	if err = Encode(out, img, f); err != nil {
		return fmt.Errorf("could not encode %s destination %q: %w", f, path, err)
	}
	canRename = true
	return nil
}

// exportable returns img as an image.Paletted when its colour table fits,
// otherwise img itself.
func exportable(img *imagergb.Image) image.Image {
	if img.ColorCount() > maxPaletted {
		return img
	}
	pal := make(color.Palette, 0, img.ColorCount())
	for _, c := range img.Palette() {
		pal = append(pal, c)
	}
	p := image.NewPaletted(img.Bounds(), pal)
	for v := 0; v < img.Height(); v++ {
		row := p.Pix[v*p.Stride : v*p.Stride+img.Width()]
		for u, l := range img.Row(v) {
			row[u] = uint8(l)
		}
	}
	return p
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
