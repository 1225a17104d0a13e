// SPDX-License-Identifier: Unlicense OR MIT

/*
Package dial implements the model of a circular picker: the mapping
between pointer positions, swept angles and domain values, the
seam-crossing heuristic for drags, the tap animation and the geometry
of the rings.

Angles are bearings in degrees, increasing clockwise from the top of
the dial (12 o'clock) in a coordinate system where y grows downwards.

The package is independent of any toolkit. Package picker wires a Dial
to Gio input and painting, package raster draws one into an image.
*/
package dial
