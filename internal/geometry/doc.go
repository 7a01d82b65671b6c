// Package geometry provides the float-based primitives the compositing tree
// is built on: points, sizes, rectangles, 2D affine matrices, and normalized
// anchor alignments.
//
// The root anchor package re-exports these types; user code never imports
// this package directly.
package geometry
