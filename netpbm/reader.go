package netpbm

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/regiongrow/imagergb"
)

func init() {
	image.RegisterFormat("pbm", "P1", decodeImage, decodeConfig)
	image.RegisterFormat("pbm", "P4", decodeImage, decodeConfig)
	image.RegisterFormat("ppm", "P3", decodeImage, decodeConfig)
	image.RegisterFormat("ppm", "P6", decodeImage, decodeConfig)
}

// Decode reads any supported Netpbm image from r.
// opts configure the resulting image (e.g. imagergb.WithLUTCapacity).
func Decode(r io.Reader, opts ...imagergb.Option) (*imagergb.Image, error) {
	d := newDecoder(r)
	return d.decode(opts, func(Format) bool { return true })
}

// ReadPBM reads a P1 or P4 image from r.
func ReadPBM(r io.Reader, opts ...imagergb.Option) (*imagergb.Image, error) {
	d := newDecoder(r)
	return d.decode(opts, Format.IsBitmap)
}

// ReadPPM reads a P3 or P6 image from r.
func ReadPPM(r io.Reader, opts ...imagergb.Option) (*imagergb.Image, error) {
	d := newDecoder(r)
	return d.decode(opts, func(f Format) bool { return !f.IsBitmap() })
}

// DecodeConfig returns the dimensions of a Netpbm image without reading
// the raster.
func DecodeConfig(r io.Reader) (Format, int, int, error) {
	d := newDecoder(r)
	if err := d.decodeHeader(); err != nil {
		return "", 0, 0, err
	}
	return d.format, d.width, d.height, nil
}

// Load opens path and decodes it with Decode.
func Load(path string, opts ...imagergb.Option) (*imagergb.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	return img, nil
}

func decodeImage(r io.Reader) (image.Image, error) {
	img, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func decodeConfig(r io.Reader) (image.Config, error) {
	_, w, h, err := DecodeConfig(r)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.RGBAModel, Width: w, Height: h}, nil
}

// decoder holds the header fields of one Netpbm stream.
type decoder struct {
	br *bufio.Reader

	format Format
	width  int
	height int
	maxVal int // 1 for PBM
}

func newDecoder(r io.Reader) *decoder {
	return &decoder{br: bufio.NewReader(r)}
}

func (d *decoder) decode(opts []imagergb.Option, accept func(Format) bool) (*imagergb.Image, error) {
	if err := d.decodeHeader(); err != nil {
		return nil, err
	}
	if !accept(d.format) {
		return nil, fmt.Errorf("%w: unexpected %s", ErrFormat, d.format)
	}
	img, err := imagergb.New(d.width, d.height, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHeader, err)
	}

	switch d.format {
	case PlainPBM:
		err = d.decodePlainPBM(img)
	case RawPBM:
		err = d.decodeRawPBM(img)
	case PlainPPM:
		err = d.decodePlainPPM(img)
	case RawPPM:
		err = d.decodeRawPPM(img)
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (d *decoder) decodeHeader() error {
	var magic [2]byte
	if _, err := io.ReadFull(d.br, magic[:]); err != nil {
		return fmt.Errorf("%w: missing magic number", ErrFormat)
	}
	d.format = Format(magic[:])
	switch d.format {
	case PlainPBM, RawPBM, PlainPPM, RawPPM:
	default:
		return fmt.Errorf("%w: magic %q", ErrFormat, string(magic[:]))
	}

	var err error
	if d.width, err = d.headerInt("width"); err != nil {
		return err
	}
	if d.height, err = d.headerInt("height"); err != nil {
		return err
	}
	if d.height > 0 && d.width > MaxPixels/d.height {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrHeader, d.width, d.height, MaxPixels)
	}
	if d.format.IsBitmap() {
		d.maxVal = 1
		return nil
	}
	if d.maxVal, err = d.headerInt("maxval"); err != nil {
		return err
	}
	if d.maxVal < 1 || d.maxVal > maxMaxVal {
		return fmt.Errorf("%w: maxval %d outside [1, %d]", ErrHeader, d.maxVal, maxMaxVal)
	}
	return nil
}

func (d *decoder) headerInt(field string) (int, error) {
	tok, err := d.token()
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrHeader, field, err)
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrHeader, field, tok)
	}
	return n, nil
}

// skipSpace consumes whitespace and '#' comments.
func (d *decoder) skipSpace() error {
	for {
		b, err := d.br.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case b == '#':
			if _, err := d.br.ReadString('\n'); err != nil {
				return err
			}
		case isSpace(b):
		default:
			return d.br.UnreadByte()
		}
	}
}

// token returns the next whitespace-delimited token. The single whitespace
// byte ending it is consumed.
func (d *decoder) token() (string, error) {
	if err := d.skipSpace(); err != nil {
		return "", err
	}
	var buf []byte
	for {
		b, err := d.br.ReadByte()
		if errors.Is(err, io.EOF) && len(buf) > 0 {
			return string(buf), nil
		}
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			return string(buf), nil
		}
		if b == '#' {
			return string(buf), d.br.UnreadByte()
		}
		buf = append(buf, b)
	}
}

func (d *decoder) decodePlainPBM(img *imagergb.Image) error {
	for v := 0; v < d.height; v++ {
		for u := 0; u < d.width; u++ {
			if err := d.skipSpace(); err != nil {
				return truncated(err, u, v)
			}
			b, _ := d.br.ReadByte()
			switch b {
			case '0':
			case '1':
				img.SetLabel(u, v, imagergb.Foreground)
			default:
				return fmt.Errorf("%w: %q at (%d,%d)", ErrPixel, b, u, v)
			}
		}
	}
	return nil
}

func (d *decoder) decodeRawPBM(img *imagergb.Image) error {
	row := make([]byte, (d.width+7)/8)
	for v := 0; v < d.height; v++ {
		if _, err := io.ReadFull(d.br, row); err != nil {
			return truncated(err, 0, v)
		}
		for u := 0; u < d.width; u++ {
			if row[u/8]&(0x80>>(u%8)) != 0 {
				img.SetLabel(u, v, imagergb.Foreground)
			}
		}
	}
	return nil
}

func (d *decoder) decodePlainPPM(img *imagergb.Image) error {
	var ch [3]uint8
	for v := 0; v < d.height; v++ {
		for u := 0; u < d.width; u++ {
			for i := range ch {
				tok, err := d.token()
				if err != nil {
					return truncated(err, u, v)
				}
				n, err := strconv.Atoi(tok)
				if err != nil || n < 0 || n > d.maxVal {
					return fmt.Errorf("%w: %q at (%d,%d), maxval %d", ErrPixel, tok, u, v, d.maxVal)
				}
				ch[i] = uint8(n)
			}
			if err := setColor(img, u, v, imagergb.RGBOf(ch[0], ch[1], ch[2])); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *decoder) decodeRawPPM(img *imagergb.Image) error {
	row := make([]byte, 3*d.width)
	for v := 0; v < d.height; v++ {
		if _, err := io.ReadFull(d.br, row); err != nil {
			return truncated(err, 0, v)
		}
		for u := 0; u < d.width; u++ {
			p := row[3*u : 3*u+3]
			if int(p[0]) > d.maxVal || int(p[1]) > d.maxVal || int(p[2]) > d.maxVal {
				return fmt.Errorf("%w: (%d,%d,%d) at (%d,%d), maxval %d", ErrPixel, p[0], p[1], p[2], u, v, d.maxVal)
			}
			if err := setColor(img, u, v, imagergb.RGBOf(p[0], p[1], p[2])); err != nil {
				return err
			}
		}
	}
	return nil
}

func setColor(img *imagergb.Image, u, v int, c imagergb.RGB) error {
	l, err := img.AllocColor(c)
	if err != nil {
		return fmt.Errorf("pixel (%d,%d): %w", u, v, err)
	}
	img.SetLabel(u, v, l)
	return nil
}

func truncated(err error, u, v int) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w at (%d,%d)", ErrTruncated, u, v)
	}
	return err
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
