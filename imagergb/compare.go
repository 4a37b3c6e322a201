package imagergb

// Equal reports whether a and b represent the same picture: identical size,
// identical colour count and the same RGB colour at every pixel.
// Labels themselves may differ, since one colour can sit at different
// indices in the two tables.
func Equal(a, b *Image) bool {
	eq, _ := Compare(a, b)
	return eq
}

// Compare is Equal that also reports how many pixel comparisons it made
// before reaching a verdict (0 when sizes or colour counts differ).
// Complexity: O(W·H) worst case, stops at the first mismatch.
func Compare(a, b *Image) (equal bool, comparisons int) {
	if a.width != b.width || a.height != b.height {
		return false, 0
	}
	if len(a.lut) != len(b.lut) {
		return false, 0
	}
	for i := range a.pix {
		comparisons++
		if a.lut[a.pix[i]] != b.lut[b.pix[i]] {
			return false, comparisons
		}
	}
	return true, comparisons
}
