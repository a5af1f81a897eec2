// Package graphics provides the drawing primitives the badge is built from:
// geometry with device pixel snapping, colors, vector paths with a stable
// rounded-rect layout, paints, shadows, linear gradients, a Canvas interface
// with a recording implementation, and font-backed text measurement.
//
// Coordinates are in points. A Canvas implementation decides how points map
// to device pixels; see the raster package for an offscreen one.
package graphics
