package netpbm_test

import (
	"os"

	"github.com/katalvlaran/regiongrow/imagergb"
	"github.com/katalvlaran/regiongrow/netpbm"
)

// ExampleWritePPM prints a 3×2 chess board as plain PPM.
func ExampleWritePPM() {
	img, err := imagergb.NewChess(3, 2, 1, imagergb.RGBOf(255, 0, 0))
	if err != nil {
		panic(err)
	}
	if err := netpbm.WritePPM(os.Stdout, img); err != nil {
		panic(err)
	}
	// Output:
	// P3
	// 3 2
	// 255
	//   255   0   0  255 255 255  255   0   0
	//   255 255 255  255   0   0  255 255 255
}
