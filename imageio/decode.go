package imageio

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/regiongrow/imagergb"
	"github.com/katalvlaran/regiongrow/netpbm"
)

// Decode reads any registered image format from r and returns it as an
// indexed image together with the format name. Netpbm inputs decode directly;
// other formats are converted with imagergb.FromImage. opts configure the
// resulting image in both cases.
func Decode(r io.Reader, opts ...imagergb.Option) (*imagergb.Image, string, error) {
	br := bufio.NewReader(r)
	if magic, err := br.Peek(2); err == nil && magic[0] == 'P' {
		if _, err := netpbm.ParseFormat(string(magic)); err == nil {
			img, err := netpbm.Decode(br, opts...)
			if err != nil {
				return nil, "", err
			}
			name := "ppm"
			if netpbm.Format(magic).IsBitmap() {
				name = "pbm"
			}
			return img, name, nil
		}
	}

	src, name, err := image.Decode(br)
	if err != nil {
		return nil, "", err
	}
	if img, ok := src.(*imagergb.Image); ok {
		return img, name, nil
	}
	img, err := imagergb.FromImage(src, opts...)
	if err != nil {
		return nil, name, fmt.Errorf("converting %s image: %w", name, err)
	}
	return img, name, nil
}

// Load opens path and decodes it with Decode.
func Load(path string, opts ...imagergb.Option) (*imagergb.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer f.Close()
	img, name, err := Decode(f, opts...)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image %q: %w", path, err)
	}
	return img, name, nil
}
