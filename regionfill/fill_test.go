package regionfill_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regiongrow/gridgraph"
	"github.com/katalvlaran/regiongrow/imagergb"
	"github.com/katalvlaran/regiongrow/regionfill"
)

// fillers returns one Filler per built-in strategy, keyed by name.
func fillers(t *testing.T, opts ...regionfill.Option) map[string]regionfill.Filler {
	t.Helper()
	out := make(map[string]regionfill.Filler, 3)
	for _, s := range regionfill.Strategies() {
		f, err := regionfill.New(s, opts...)
		require.NoError(t, err)
		out[s.String()] = f
	}
	return out
}

// labels copies the label grid of img row by row.
func labels(img *imagergb.Image) [][]imagergb.Label {
	out := make([][]imagergb.Label, img.Height())
	for v := range out {
		out[v] = img.Row(v)
	}
	return out
}

// fromRows builds an image whose pixel labels are given row by row.
// Labels above 1 are backed by distinct generated colours.
func fromRows(t *testing.T, rows [][]imagergb.Label) *imagergb.Image {
	t.Helper()
	img, err := imagergb.New(len(rows[0]), len(rows))
	require.NoError(t, err)
	c := imagergb.RGBOf(10, 20, 30)
	for v, row := range rows {
		for u, l := range row {
			for int(l) >= img.ColorCount() {
				c = imagergb.NextColor(c)
				_, err := img.AllocColor(c)
				require.NoError(t, err)
			}
			img.SetLabel(u, v, l)
		}
	}
	return img
}

// randomImage returns a w×h image with labels drawn from [0, k).
func randomImage(t *testing.T, rng *rand.Rand, w, h, k int) *imagergb.Image {
	t.Helper()
	rows := make([][]imagergb.Label, h)
	for v := range rows {
		rows[v] = make([]imagergb.Label, w)
		for u := range rows[v] {
			rows[v][u] = imagergb.Label(rng.Intn(k))
		}
	}
	return fromRows(t, rows)
}

func TestFill_SinglePixel(t *testing.T) {
	for name, f := range fillers(t) {
		t.Run(name, func(t *testing.T) {
			img, _ := imagergb.New(1, 1)
			n, err := f.Fill(img, 0, 0, imagergb.Foreground)
			require.NoError(t, err)
			assert.Equal(t, 1, n)
			assert.Equal(t, imagergb.Black, img.PixelColor(0, 0))
		})
	}
}

func TestFill_BlankTenByTen(t *testing.T) {
	for name, f := range fillers(t) {
		t.Run(name, func(t *testing.T) {
			img, _ := imagergb.New(10, 10)
			n, err := f.Fill(img, 0, 0, imagergb.Foreground)
			require.NoError(t, err)
			assert.Equal(t, 100, n)
			assert.Equal(t, 100, img.Count(imagergb.Foreground))
		})
	}
}

func TestFill_AroundBlackSquare(t *testing.T) {
	// 4×4 background with a 2×2 black square at rows/cols 1–2.
	rows := [][]imagergb.Label{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	}
	for name, f := range fillers(t) {
		t.Run(name, func(t *testing.T) {
			img := fromRows(t, rows)
			n, err := f.Fill(img, 0, 0, imagergb.Foreground)
			require.NoError(t, err)
			assert.Equal(t, 12, n)
			assert.Equal(t, 16, img.Count(imagergb.Foreground))
		})
	}
}

func TestFill_StopsAtOtherLabels(t *testing.T) {
	// the wall of 2s splits the background in two
	rows := [][]imagergb.Label{
		{0, 0, 2, 0},
		{0, 0, 2, 0},
		{2, 2, 2, 0},
	}
	for name, f := range fillers(t) {
		t.Run(name, func(t *testing.T) {
			img := fromRows(t, rows)
			n, err := f.Fill(img, 1, 1, imagergb.Foreground)
			require.NoError(t, err)
			assert.Equal(t, 4, n)
			want := [][]imagergb.Label{
				{1, 1, 2, 0},
				{1, 1, 2, 0},
				{2, 2, 2, 0},
			}
			assert.Empty(t, cmp.Diff(want, labels(img)))
		})
	}
}

func TestFill_NoOpAndIdempotence(t *testing.T) {
	for name, f := range fillers(t) {
		t.Run(name, func(t *testing.T) {
			img, _ := imagergb.NewChess(6, 6, 2, imagergb.Black)
			before := labels(img)

			// seed already carries label 1
			n, err := f.Fill(img, 0, 0, imagergb.Foreground)
			require.NoError(t, err)
			assert.Equal(t, 0, n)
			assert.Empty(t, cmp.Diff(before, labels(img)))

			first, err := f.Fill(img, 2, 0, imagergb.Foreground)
			require.NoError(t, err)
			assert.Equal(t, 4, first)
			second, err := f.Fill(img, 2, 0, imagergb.Foreground)
			require.NoError(t, err)
			assert.Equal(t, 0, second)
		})
	}
}

func TestFill_PreconditionErrors(t *testing.T) {
	for name, f := range fillers(t) {
		t.Run(name, func(t *testing.T) {
			img, _ := imagergb.New(3, 3)
			before := labels(img)

			_, err := f.Fill(nil, 0, 0, imagergb.Foreground)
			assert.ErrorIs(t, err, regionfill.ErrNilImage)
			_, err = f.Fill(img, 3, 0, imagergb.Foreground)
			assert.ErrorIs(t, err, regionfill.ErrInvalidSeed)
			_, err = f.Fill(img, 0, -1, imagergb.Foreground)
			assert.ErrorIs(t, err, regionfill.ErrInvalidSeed)
			_, err = f.Fill(img, 0, 0, 2)
			assert.ErrorIs(t, err, regionfill.ErrLabelRange)

			assert.Empty(t, cmp.Diff(before, labels(img)), "failed preconditions must not mutate")
		})
	}
}

// TestFill_StrategiesAgree checks order independence: on random images every
// strategy yields the same image and count, the count equals the number of
// changed pixels, and the changed set is exactly the seed's component.
func TestFill_StrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 40; trial++ {
		w, h := 1+rng.Intn(24), 1+rng.Intn(24)
		base := randomImage(t, rng, w, h, 3)
		u, v := rng.Intn(w), rng.Intn(h)
		target, err := base.AllocColor(imagergb.RGBOf(1, 2, 3))
		require.NoError(t, err)

		gg, err := gridgraph.FromImage(base)
		require.NoError(t, err)
		component := gg.ComponentAt(u, v)

		var (
			refLabels [][]imagergb.Label
			refCount  int
		)
		for _, s := range regionfill.Strategies() {
			name := fmt.Sprintf("trial%d/%s", trial, s)
			f, err := regionfill.New(s)
			require.NoError(t, err)

			img := base.Clone()
			n, err := f.Fill(img, u, v, target)
			require.NoError(t, err, name)

			changed := 0
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					if img.Label(x, y) != base.Label(x, y) {
						changed++
						assert.Equal(t, target, img.Label(x, y), name)
					}
				}
			}
			assert.Equal(t, n, changed, "%s: conservation", name)
			assert.Equal(t, len(component), n, "%s: component size", name)
			for _, idx := range component {
				x, y := gg.Coordinate(idx)
				assert.Equal(t, target, img.Label(x, y), "%s: (%d,%d) in component", name, x, y)
			}

			if refLabels == nil {
				refLabels, refCount = labels(img), n
				continue
			}
			assert.Equal(t, refCount, n, name)
			assert.Empty(t, cmp.Diff(refLabels, labels(img)), name)
		}
	}
}

func TestFillFunc_Adapter(t *testing.T) {
	var calls int
	f := regionfill.FillFunc(func(img *imagergb.Image, u, v int, l imagergb.Label) (int, error) {
		calls++
		return regionfill.FillQueue(img, u, v, l)
	})
	img, _ := imagergb.New(2, 2)
	n, err := f.Fill(img, 1, 1, imagergb.Foreground)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 1, calls)
}

func TestPackageLevelFills(t *testing.T) {
	for name, fn := range map[string]func(*imagergb.Image, int, int, imagergb.Label, ...regionfill.Option) (int, error){
		"recursive": regionfill.FillRecursive,
		"stack":     regionfill.FillStack,
		"queue":     regionfill.FillQueue,
	} {
		img, _ := imagergb.New(5, 3)
		n, err := fn(img, 4, 2, imagergb.Foreground)
		require.NoError(t, err, name)
		assert.Equal(t, 15, n, name)
	}
}
