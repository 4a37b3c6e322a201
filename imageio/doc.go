// Package imageio moves indexed images in and out of the standard image
// ecosystem.
//
// Encode and Save write PNG, GIF, JPEG, BMP, TIFF and the Netpbm variants.
// Images whose colour table fits in 256 entries are written to PNG and GIF
// as paletted images, so the exact colours survive. Larger tables are written
// to PNG as true colour and refused for GIF.
//
// Decode and Load accept every format registered with the image package,
// including WebP and the Netpbm formats registered by package netpbm, and
// convert the result with imagergb.FromImage.
//
// Errors:
//
//   - ErrUnsupported: unknown format name or file extension.
//   - ErrTooManyColors: GIF output of more than 256 colours.
package imageio
