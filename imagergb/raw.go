package imagergb

import (
	"bufio"
	"fmt"
	"io"
)

// WriteRaw dumps img in a human-readable form: a header with the size and
// colour count, one line of %2d labels per row, then every LUT entry as
// "label -> (r,g,b)".
func (img *Image) WriteRaw(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "width = %d height = %d\n", img.width, img.height)
	fmt.Fprintf(bw, "num_colors = %d\n", len(img.lut))
	fmt.Fprintln(bw, "RAW image")
	for v := 0; v < img.height; v++ {
		for _, l := range img.pix[v*img.width : (v+1)*img.width] {
			fmt.Fprintf(bw, "%2d", l)
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw, "LUT:")
	for i, c := range img.lut {
		fmt.Fprintf(bw, "%3d -> (%3d,%3d,%3d)\n", i, c.R(), c.G(), c.B())
	}
	fmt.Fprintln(bw)
	return bw.Flush()
}
