// Package netpbm reads and writes indexed images in the Netpbm PBM and PPM
// formats.
//
// Formats:
//
//   - P1 / P4: plain / raw PBM. Bits are labels: 0 is WHITE (Background),
//     1 is BLACK (Foreground). Raw rows are packed MSB-first and padded to a
//     whole byte.
//   - P3 / P6: plain / raw PPM. Each pixel's (r,g,b) is resolved through the
//     image's colour table, so at most LUTCapacity distinct colours can be
//     read. Channel values are taken as-is; maxval must be in [1, 255].
//
// Header tokens may be separated by whitespace and '#' comments running to
// the end of the line.
//
// Writing:
//
//   - WritePBM emits P4 and requires an image with exactly two colours.
//     Padding bits are written as WHITE.
//   - WritePPM emits P3: "P3\nW H\n255\n", then per row "  %3d %3d %3d" per
//     pixel and a newline.
//   - WritePPMRaw emits P6 with maxval 255.
//
// Decode dispatches on the magic number. Importing the package also
// registers "pbm" and "ppm" with the image package, so image.Decode returns
// an *imagergb.Image for these inputs.
//
// Errors:
//
//   - ErrFormat: unknown or unexpected magic number.
//   - ErrHeader: malformed width, height or maxval, or more than MaxPixels pixels.
//   - ErrPixel: a sample outside [0, maxval] or not a number.
//   - ErrTruncated: the stream ended before all pixels were read.
//   - ErrNotBilevel: WritePBM on an image without exactly two colours.
package netpbm
