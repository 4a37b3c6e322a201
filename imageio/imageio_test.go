package imageio_test

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regiongrow/imageio"
	"github.com/katalvlaran/regiongrow/imagergb"
)

func chess(t *testing.T) *imagergb.Image {
	t.Helper()
	img, err := imagergb.NewChess(12, 9, 3, imagergb.RGBOf(200, 30, 90))
	require.NoError(t, err)
	return img
}

func TestEncodeDecode_Lossless(t *testing.T) {
	src := chess(t)
	for _, f := range []imageio.Format{imageio.PNG, imageio.GIF, imageio.BMP, imageio.TIFF, imageio.PPM, imageio.PPMRaw} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, imageio.Encode(&buf, src, f))
			got, _, err := imageio.Decode(&buf)
			require.NoError(t, err)
			assert.True(t, imagergb.Equal(src, got))
		})
	}
}

func TestEncodeDecode_PBM(t *testing.T) {
	src, err := imagergb.NewChess(11, 3, 2, imagergb.Black)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, imageio.Encode(&buf, src, imageio.PBM))
	got, name, err := imageio.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "pbm", name)
	assert.True(t, imagergb.Equal(src, got))
}

func TestEncode_JPEG(t *testing.T) {
	src := chess(t)
	var buf bytes.Buffer
	require.NoError(t, imageio.Encode(&buf, src, imageio.JPEG))
	cfg, name, err := image.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", name)
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, 9, cfg.Height)
}

func TestEncode_PNGPalettedOnlyWhenSmall(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, imageio.Encode(&buf, chess(t), imageio.PNG))
	dec, _, err := image.Decode(&buf)
	require.NoError(t, err)
	assert.IsType(t, &image.Paletted{}, dec)

	big, err := imagergb.NewPalette(40, 40, 1)
	require.NoError(t, err)
	require.Equal(t, imagergb.DefaultLUTCapacity, big.ColorCount())
	buf.Reset()
	require.NoError(t, imageio.Encode(&buf, big, imageio.PNG))
	got, name, err := imageio.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "png", name)
	assert.True(t, imagergb.Equal(big, got))

	_, _, err = imageio.Decode(bytes.NewReader(buf.Bytes()), imagergb.WithLUTCapacity(100))
	assert.ErrorIs(t, err, imagergb.ErrLUTFull)
}

func TestEncode_GIFRefusesLargeTable(t *testing.T) {
	big, err := imagergb.NewPalette(40, 40, 1)
	require.NoError(t, err)
	require.Greater(t, big.ColorCount(), 256)

	var buf bytes.Buffer
	err = imageio.Encode(&buf, big, imageio.GIF)
	assert.ErrorIs(t, err, imageio.ErrTooManyColors)
	assert.Zero(t, buf.Len())
}

func TestDecode_NetpbmHonoursOptions(t *testing.T) {
	src := "P3 3 1 255\n1 1 1  2 2 2  3 3 3\n"
	_, _, err := imageio.Decode(strings.NewReader(src), imagergb.WithLUTCapacity(3))
	assert.ErrorIs(t, err, imagergb.ErrLUTFull)

	img, name, err := imageio.Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "ppm", name)
	assert.Equal(t, 5, img.ColorCount())
}

func TestDecode_Unknown(t *testing.T) {
	_, _, err := imageio.Decode(strings.NewReader("not an image"))
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	src := chess(t)
	for _, f := range []imageio.Format{imageio.PNG, imageio.PPM, imageio.TIFF} {
		path := filepath.Join(dir, "chess"+f.Ext())
		require.NoError(t, imageio.Save(path, src, f))
		got, _, err := imageio.Load(path)
		require.NoError(t, err)
		assert.True(t, imagergb.Equal(src, got), f)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "no temporary files left behind")

	_, _, err = imageio.Load(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestSave_FailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.pbm")
	err := imageio.Save(path, chess(t), imageio.PBM)
	assert.Error(t, err)
	entries, rerr := os.ReadDir(dir)
	require.NoError(t, rerr)
	assert.Empty(t, entries)
}

func TestFormats(t *testing.T) {
	f, err := imageio.ParseFormat("JPG")
	require.NoError(t, err)
	assert.Equal(t, imageio.JPEG, f)
	for _, f := range imageio.Formats() {
		got, err := imageio.ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err = imageio.ParseFormat("webp")
	assert.ErrorIs(t, err, imageio.ErrUnsupported)

	f, err = imageio.FormatOf("a/b/c.TIF")
	require.NoError(t, err)
	assert.Equal(t, imageio.TIFF, f)
	_, err = imageio.FormatOf("noext")
	assert.ErrorIs(t, err, imageio.ErrUnsupported)
	assert.Equal(t, ".ppm", imageio.PPMRaw.Ext())

	assert.ErrorIs(t, imageio.Encode(&bytes.Buffer{}, chess(t), imageio.Format("xcf")), imageio.ErrUnsupported)
}
