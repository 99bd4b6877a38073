// Package hud draws the heads-up display on top of the stylized frame.
package hud

import (
	"image"
	"time"

	"github.com/ayusman/idcam/internal/config"
	"github.com/ayusman/idcam/internal/detector"
	"gocv.io/x/gocv"
)

// Text placement and sizes.
var (
	titleOrigin  = image.Pt(20, 40)
	statusOrigin = image.Pt(20, 70)
)

const (
	titleScale     = 0.7
	titleThickness = 2
	smallScale     = 0.4
	smallThickness = 1

	bracketThickness = 2
	labelOffset      = 20

	clockLayout = "15:04:05"
)

// Renderer draws HUD text and detection overlays using the configured style.
type Renderer struct {
	cfg config.Config
	now func() time.Time
}

// New creates a Renderer that reads the wall clock on every status line.
func New(cfg config.Config) *Renderer {
	return &Renderer{cfg: cfg, now: time.Now}
}

// SetClock replaces the time source used for the status line.
func (r *Renderer) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	r.now = now
}

// StatusText returns the status line for the current instant.
func (r *Renderer) StatusText() string {
	return r.cfg.StatusLabel + r.now().Format(clockLayout)
}

// DrawInterface writes the title and the status line onto frame.
func (r *Renderer) DrawInterface(frame *gocv.Mat) {
	gocv.PutTextWithParams(frame, r.cfg.Title, titleOrigin, r.cfg.Font,
		titleScale, r.cfg.ColorPrimary, titleThickness, gocv.LineAA, false)

	gocv.PutTextWithParams(frame, r.StatusText(), statusOrigin, r.cfg.Font,
		smallScale, r.cfg.ColorDim, smallThickness, gocv.LineAA, false)
}

// DrawDetectionBox marks the top-left and bottom-right corners of rect with
// brackets a quarter of its width long, and labels it below.
func (r *Renderer) DrawDetectionBox(frame *gocv.Mat, rect detector.Rect) {
	x, y, w, h := rect.X, rect.Y, rect.W, rect.H
	arm := w / 4
	c := r.cfg.ColorPrimary

	gocv.Line(frame, image.Pt(x, y), image.Pt(x+arm, y), c, bracketThickness)
	gocv.Line(frame, image.Pt(x, y), image.Pt(x, y+arm), c, bracketThickness)

	gocv.Line(frame, image.Pt(x+w, y+h), image.Pt(x+w-arm, y+h), c, bracketThickness)
	gocv.Line(frame, image.Pt(x+w, y+h), image.Pt(x+w, y+h-arm), c, bracketThickness)

	gocv.PutTextWithParams(frame, r.cfg.BoxLabel, image.Pt(x, y+h+labelOffset), r.cfg.Font,
		smallScale, c, smallThickness, gocv.LineAA, false)
}
