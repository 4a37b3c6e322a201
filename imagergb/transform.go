package imagergb

// Clone returns a deep copy of img: same size, same labels, an independent
// colour table with the same entries and capacity.
// Complexity: O(W·H + ColorCount).
func (img *Image) Clone() *Image {
	out := img.emptyLike(img.width, img.height)
	copy(out.pix, img.pix)
	return out
}

// Rotate90CW returns img rotated 90° clockwise. The result is Height×Width;
// pixel (u, v) of img lands at (Height-1-v, u). img is not modified.
// Complexity: O(W·H).
func (img *Image) Rotate90CW() *Image {
	out := img.emptyLike(img.height, img.width)
	for v := 0; v < img.height; v++ {
		for u := 0; u < img.width; u++ {
			// out column = img.height-1-v, out row = u
			out.pix[u*out.width+(img.height-1-v)] = img.pix[v*img.width+u]
		}
	}
	return out
}

// Rotate180CW returns img rotated 180°. Pixel (u, v) of img lands at
// (Width-1-u, Height-1-v). img is not modified.
// Complexity: O(W·H).
func (img *Image) Rotate180CW() *Image {
	out := img.emptyLike(img.width, img.height)
	n := len(img.pix)
	for i, l := range img.pix {
		out.pix[n-1-i] = l
	}
	return out
}

// emptyLike allocates a w×h image carrying a copy of img's colour table.
func (img *Image) emptyLike(w, h int) *Image {
	lut := make([]RGB, len(img.lut), cap(img.lut))
	copy(lut, img.lut)
	return &Image{
		width:  w,
		height: h,
		pix:    make([]Label, w*h),
		lut:    lut,
	}
}
