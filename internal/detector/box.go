// Package detector provides face detection interfaces and types for the camera pipeline.
package detector

import "image"

// RelativeBox is a face location expressed as fractions (0-1) of the image size.
type RelativeBox struct {
	XMin   float64 `json:"xmin"`
	YMin   float64 `json:"ymin"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Detection is a single face reported by a model.
type Detection struct {
	Box        RelativeBox `json:"box"`
	Confidence float64     `json:"confidence"`
}

// Rect is a pixel-space rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Normalize converts a detection's relative box to pixels for a width x height image.
// Coordinates are truncated first, then the origin is floored at zero and the
// size is capped against the already clamped origin, so boxes that run past an
// edge are cropped rather than rejected.
func Normalize(d Detection, width, height int) Rect {
	b := d.Box

	x := int(b.XMin * float64(width))
	y := int(b.YMin * float64(height))
	w := int(b.Width * float64(width))
	h := int(b.Height * float64(height))

	x = max(0, x)
	y = max(0, y)
	w = min(width-x, w)
	h = min(height-y, h)

	return Rect{X: x, Y: y, W: w, H: h}
}
