// Package segment labels every background region of an indexed image.
//
// What:
//
//   - Segment scans pixels row-major and, at every pixel that still carries
//     imagergb.Background, floods its 4-connected region with a fresh colour
//     through an injected regionfill.Filler.
//   - Colours come from the deterministic imagergb.NextColor sequence,
//     starting after BLACK unless WithStartColor says otherwise.
//   - Each region is discovered through its top-left-most pixel.
//
// Colour resolution:
//
//  1. A generated colour already in the table reuses its label.
//  2. Otherwise a new entry is allocated while the table has room.
//  3. Once the table is full, labels cycle through the non-fixed entries:
//     label = regionCount mod (colorCount-2) + 2. Distinct regions may then
//     share a colour.
//
// A generated colour that resolves to the background label is skipped, since
// filling background with background relabels nothing.
//
// Options:
//
//   - WithLogger(l): emit one Debug record per labeled region.
//   - WithOnRegion(fn): callback after every region.
//   - WithStartColor(c): first colour is NextColor(c).
//
// Errors:
//
//   - ErrNilImage, ErrNilFiller: invalid arguments.
//   - ErrNoLabels: the table is full and holds only the two fixed entries.
//   - Any error returned by the Filler, wrapped; the regions labeled so far
//     are still counted in the returned total.
//
// Complexity: O(W·H) scan plus the cost of the fills, which together touch
// every background pixel once.
package segment
