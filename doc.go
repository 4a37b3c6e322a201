// Package regiongrow is a region-growing toolkit for indexed RGB images.
//
// What:
//
//   - imagergb:   indexed-colour image with a bounded colour table.
//   - frontier:   pixel coordinates and the generic Stack / Queue frontiers.
//   - regionfill: recursive, stack and queue flood fills behind one Filler.
//   - segment:    labels every background region through an injected Filler.
//   - gridgraph:  independent 4-connected component analysis of a label grid.
//   - netpbm:     PBM (P1/P4) and PPM (P3/P6) readers and writers.
//   - imageio:    PNG, GIF, JPEG, BMP, TIFF and WebP interop.
//   - instr:      instrumentation counters injected into fills.
//
// Quick example:
//
//	img, _ := imagergb.NewChess(80, 80, 20, imagergb.Black)
//	n, _ := segment.Segment(img, regionfill.NewQueue())
//	_ = netpbm.Save("chess.ppm", img, netpbm.PlainPPM)
//
// The regiongrow command in cmd/regiongrow exposes fill, segment, chess,
// palette, rotate, equal, raw and bench.
package regiongrow
