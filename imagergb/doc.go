// Package imagergb implements indexed-colour RGB raster images: a rectangular
// grid of colour labels plus a bounded, append-only look-up table (LUT) that
// maps each label to a 24-bit RGB triplet.
//
// What:
//
//   - Image owns a width×height label grid and its LUT; no two images share storage.
//   - Label 0 is always WHITE (the background), label 1 is always BLACK.
//   - The LUT has lookup-or-insert semantics (FindColor, AllocColor) and a
//     fixed capacity (DefaultLUTCapacity, configurable with WithLUTCapacity).
//   - Constructors: New (all background), NewChess, NewPalette, FromImage.
//   - Derived images: Clone, Rotate90CW, Rotate180CW (each returns a new Image).
//   - Comparison: Equal / Compare match pixel colours, not labels.
//   - Image implements image.Image, so any encoder of the standard library or
//     golang.org/x/image can serialise it.
//
// Invariants:
//
//   - 0 ≤ label < ColorCount() ≤ Capacity() for every stored label.
//   - ColorCount never decreases; Width and Height never change.
//
// Preconditions:
//
//	Label and SetLabel require IsValidPixel(u, v) and, for SetLabel, a label
//	already present in the LUT. Violations are programmer errors and panic,
//	like out-of-range slice indexing. Callers validate with IsValidPixel first.
//
// Errors:
//
//   - ErrInvalidSize: width or height not positive, or width×height overflows int.
//   - ErrInvalidEdge: chess/palette tile edge not positive.
//   - ErrLUTFull: AllocColor needs a new entry but the LUT is at capacity.
//
// Concurrency:
//
//	An Image is not safe for concurrent mutation. Read-only methods may run
//	concurrently when no goroutine mutates the image.
package imagergb
