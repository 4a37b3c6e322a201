package netpbm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/regiongrow/imagergb"
)

// plainLineMax is the longest line a plain PBM writer emits.
const plainLineMax = 70

// Encode writes img to w in format f.
func Encode(w io.Writer, img *imagergb.Image, f Format) error {
	switch f {
	case PlainPBM:
		return writePBM(w, img, false)
	case RawPBM:
		return writePBM(w, img, true)
	case PlainPPM:
		return WritePPM(w, img)
	case RawPPM:
		return WritePPMRaw(w, img)
	}
	return fmt.Errorf("%w: %q", ErrFormat, string(f))
}

// WritePBM writes img as raw PBM (P4). img must have exactly two colours;
// label 1 becomes a set bit.
func WritePBM(w io.Writer, img *imagergb.Image) error {
	return writePBM(w, img, true)
}

// WritePPM writes img as plain PPM (P3) with maxval 255.
func WritePPM(w io.Writer, img *imagergb.Image) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width(), img.Height())
	for v := 0; v < img.Height(); v++ {
		for u := 0; u < img.Width(); u++ {
			c := img.PixelColor(u, v)
			fmt.Fprintf(bw, "  %3d %3d %3d", c.R(), c.G(), c.B())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WritePPMRaw writes img as raw PPM (P6) with maxval 255.
func WritePPMRaw(w io.Writer, img *imagergb.Image) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width(), img.Height())
	row := make([]byte, 3*img.Width())
	for v := 0; v < img.Height(); v++ {
		for u := 0; u < img.Width(); u++ {
			c := img.PixelColor(u, v)
			row[3*u], row[3*u+1], row[3*u+2] = c.R(), c.G(), c.B()
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes img to path in format f. On failure a partial file may remain.
func Save(path string, img *imagergb.Image, f Format) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if err = Encode(out, img, f); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}
	return nil
}

func writePBM(w io.Writer, img *imagergb.Image, raw bool) error {
	if img.ColorCount() != 2 {
		return fmt.Errorf("%w: image has %d", ErrNotBilevel, img.ColorCount())
	}
	bw := bufio.NewWriter(w)
	if !raw {
		fmt.Fprintf(bw, "P1\n%d %d\n", img.Width(), img.Height())
		for v := 0; v < img.Height(); v++ {
			for u, l := range img.Row(v) {
				if u > 0 && u%plainLineMax == 0 {
					bw.WriteByte('\n')
				}
				bw.WriteByte('0' + byte(l))
			}
			bw.WriteByte('\n')
		}
		return bw.Flush()
	}

	fmt.Fprintf(bw, "P4\n%d %d\n", img.Width(), img.Height())
	packed := make([]byte, (img.Width()+7)/8)
	for v := 0; v < img.Height(); v++ {
		clear(packed)
		for u, l := range img.Row(v) {
			if l == imagergb.Foreground {
				packed[u/8] |= 0x80 >> (u % 8)
			}
		}
		if _, err := bw.Write(packed); err != nil {
			return err
		}
	}
	return bw.Flush()
}
