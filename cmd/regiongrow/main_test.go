package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regiongrow/imageio"
	"github.com/katalvlaran/regiongrow/imagergb"
)

// exec runs the CLI and returns its standard output.
func exec(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func TestChessAndRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.pbm")
	_, err := exec(t, "chess", path, "--width=4", "--height=2", "--edge=1")
	require.NoError(t, err)

	out, err := exec(t, "raw", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "width = 4 height = 2\nnum_colors = 2\nRAW image\n 1 0 1 0\n 0 1 0 1\nLUT:\n"), out)
}

func TestSegmentVerify(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "board.ppm")
	_, err := exec(t, "chess", in, "--width=40", "--height=30", "--edge=10")
	require.NoError(t, err)

	outDir := filepath.Join(dir, "out")
	for _, s := range []string{"recursive", "stack", "queue"} {
		_, err = exec(t, "segment", in, "--out-dir", outDir, "--strategy", s, "--format=png", "--verify", "--workers=2")
		require.NoError(t, err, s)
	}
	img, _, err := imageio.Load(filepath.Join(outDir, "board.png"))
	require.NoError(t, err)
	assert.Zero(t, img.Count(imagergb.Background))
	assert.Equal(t, 2+6, img.ColorCount(), "one colour per white square")
}

func TestSegmentReportsFailures(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.ppm")
	require.NoError(t, os.WriteFile(bad, []byte("P3 1 1 255\n1 2"), 0o644))
	_, err := exec(t, "segment", bad, "--out-dir", filepath.Join(dir, "out"))
	assert.ErrorContains(t, err, "error processing 1 files")
}

func TestFillRotateEqual(t *testing.T) {
	dir := t.TempDir()
	board := filepath.Join(dir, "board.ppm")
	_, err := exec(t, "chess", board, "--width=6", "--height=4", "--edge=2", "--color=#f00")
	require.NoError(t, err)

	filled := filepath.Join(dir, "filled.ppm")
	_, err = exec(t, "fill", board, filled, "-u", "2", "-v", "0", "--color=#00ff00", "--strategy=stack")
	require.NoError(t, err)
	img, _, err := imageio.Load(filled)
	require.NoError(t, err)
	assert.Equal(t, imagergb.RGBOf(0, 255, 0), img.PixelColor(3, 1))
	assert.Equal(t, imagergb.White, img.PixelColor(0, 2))

	out, err := exec(t, "equal", board, filled)
	assert.ErrorIs(t, err, errDifferent)
	assert.Equal(t, "different\n", out)

	once := filepath.Join(dir, "once.ppm")
	twice := filepath.Join(dir, "twice.ppm")
	_, err = exec(t, "rotate", board, once, "--angle=180")
	require.NoError(t, err)
	_, err = exec(t, "rotate", once, twice, "--angle=180")
	require.NoError(t, err)
	out, err = exec(t, "equal", board, twice)
	require.NoError(t, err)
	assert.Equal(t, "equal\n", out)
}

func TestFillLabelOutOfRange(t *testing.T) {
	dir := t.TempDir()
	board := filepath.Join(dir, "board.pbm")
	_, err := exec(t, "chess", board, "--edge=10")
	require.NoError(t, err)
	_, err = exec(t, "fill", board, filepath.Join(dir, "x.pbm"), "--label=5")
	assert.Error(t, err)

	// 65537 must not wrap around to label 1.
	out := filepath.Join(dir, "wrapped.pbm")
	_, err = exec(t, "fill", board, out, "--label=65537")
	assert.ErrorContains(t, err, "invalid label")
	assert.NoFileExists(t, out)
}

func TestValidation(t *testing.T) {
	dir := t.TempDir()
	_, err := exec(t, "chess", filepath.Join(dir, "a.png"), "--edge=0")
	assert.Error(t, err)
	_, err = exec(t, "chess", filepath.Join(dir, "a.xcf"))
	assert.ErrorContains(t, err, "unsupported format")
	_, err = exec(t, "chess", filepath.Join(dir, "a.png"), "--color=red")
	assert.Error(t, err)
	_, err = exec(t, "--lut-capacity=1", "palette", filepath.Join(dir, "p.png"))
	assert.Error(t, err)
}

func TestBench(t *testing.T) {
	out, err := exec(t, "bench", "--sizes=5,7", "--chess-size=8", "--chess-edge=2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 1+3*2+3)
	assert.Contains(t, out, "fill 7x7")
	assert.Contains(t, out, "segment chess 8x8/2")
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#1a2b3c")
	require.NoError(t, err)
	assert.Equal(t, imagergb.RGBOf(0x1a, 0x2b, 0x3c), c)
	c, err = parseHexColor("#abc")
	require.NoError(t, err)
	assert.Equal(t, imagergb.RGBOf(0xaa, 0xbb, 0xcc), c)
	_, err = parseHexColor("#12345")
	assert.Error(t, err)
}
