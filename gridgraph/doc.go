// Package gridgraph treats a 2D grid of integer cells (typically an image's
// label grid) as a 4-connected graph, enabling region analysis that is
// independent of the flood-fill algorithms.
//
// What:
//
//   - GridGraph is an immutable row-major snapshot of cell values.
//   - Two cells are adjacent iff they share an edge and carry equal values.
//   - ConnectedComponents lists every maximal region; ComponentsOf restricts
//     it to one value; ComponentAt returns the region of a single cell.
//
// Why:
//
//   - Segmentation check: the number of background regions before
//     segmentation must equal the region count the driver reports.
//   - Fill check: a flood fill must change exactly the seed's component.
//
// Complexity:
//
//   - FromImage / NewGridGraph: O(W×H) time and memory (deep copy).
//   - ConnectedComponents / ComponentsOf: O(W×H), Memory: O(W×H).
//   - ComponentAt: O(size of the component) time, O(W×H) visited flags.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
