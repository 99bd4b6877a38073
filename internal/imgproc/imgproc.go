// Package imgproc holds the pure image transforms applied to every frame.
package imgproc

import (
	"image"

	"github.com/ayusman/idcam/internal/detector"
	"gocv.io/x/gocv"
)

// ApplyBlur smooths the region r of img in place with a Gaussian kernel.
// Rectangles with a non-positive width or height leave img untouched.
// The original pixels under r are not recoverable afterwards.
// The same Mat is returned for chaining.
func ApplyBlur(img *gocv.Mat, r detector.Rect, kernel image.Point, sigma float64) *gocv.Mat {
	if r.Empty() || img == nil || img.Empty() {
		return img
	}

	roi := r.Image().Intersect(image.Rect(0, 0, img.Cols(), img.Rows()))
	if roi.Empty() {
		return img
	}

	// A region view lets the kernel sample pixels outside roi, so the crop is
	// blurred on its own and copied back through the view.
	region := img.Region(roi)
	defer region.Close()

	crop := region.Clone()
	defer crop.Close()
	gocv.GaussianBlur(crop, &crop, kernel, sigma, sigma, gocv.BorderDefault)
	crop.CopyTo(&region)

	return img
}

// ApplyStylize renders img as single hue luminance: the gray level goes into
// the green channel and the blue and red channels are zero.
// The result is a new Mat of the same size which the caller must close.
func ApplyStylize(img *gocv.Mat) gocv.Mat {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(*img, &gray, gocv.ColorBGRToGray)

	zeros := gocv.Zeros(gray.Rows(), gray.Cols(), gocv.MatTypeCV8U)
	defer zeros.Close()

	out := gocv.NewMat()
	gocv.Merge([]gocv.Mat{zeros, gray, zeros}, &out)
	return out
}
