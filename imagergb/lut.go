package imagergb

import "fmt"

// FindColor returns the label of colour c. ok is false when c is absent.
// Complexity: O(ColorCount).
func (img *Image) FindColor(c RGB) (l Label, ok bool) {
	for i, entry := range img.lut {
		if entry == c {
			return Label(i), true
		}
	}
	return 0, false
}

// AllocColor returns the label of colour c, appending a new table entry if c
// is absent. It returns ErrLUTFull when a new entry is needed and the table
// is at capacity.
// Complexity: O(ColorCount).
func (img *Image) AllocColor(c RGB) (Label, error) {
	if l, ok := img.FindColor(c); ok {
		return l, nil
	}
	if img.Full() {
		return 0, fmt.Errorf("AllocColor(%s): %d entries: %w", c, len(img.lut), ErrLUTFull)
	}
	img.lut = append(img.lut, c)
	return Label(len(img.lut) - 1), nil
}

// Full reports whether the colour table is at capacity.
func (img *Image) Full() bool {
	return len(img.lut) == cap(img.lut)
}

// Palette returns a copy of the colour table in label order.
func (img *Image) Palette() []RGB {
	out := make([]RGB, len(img.lut))
	copy(out, img.lut)
	return out
}
