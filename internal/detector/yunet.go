package detector

import (
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"
)

// YuNet output layout: x, y, w, h in pixels, five landmark pairs, then score.
const (
	yunetScoreCol = 14
	yunetNMS      = 0.3
	yunetTopK     = 5000
)

// YuNetDetector implements Detector using OpenCV's FaceDetectorYN.
type YuNetDetector struct {
	config Config
	model  gocv.FaceDetectorYN
	bgr    gocv.Mat
	small  gocv.Mat
	mu     sync.Mutex
	closed bool
}

// NewYuNetDetector loads the ONNX model named by config.YuNetModelPath.
func NewYuNetDetector(config Config) (*YuNetDetector, error) {
	if !fileExists(config.YuNetModelPath) {
		return nil, fmt.Errorf("%w: %s not found", ErrModelUnavailable, config.YuNetModelPath)
	}

	model := gocv.NewFaceDetectorYNWithParams(
		config.YuNetModelPath,
		"",
		image.Pt(shortRangeSide, shortRangeSide), // replaced per frame
		float32(config.MinConfidence),
		yunetNMS,
		yunetTopK,
		int(gocv.NetBackendDefault),
		int(gocv.NetTargetCPU),
	)

	return &YuNetDetector{
		config: config,
		model:  model,
		bgr:    gocv.NewMat(),
		small:  gocv.NewMat(),
	}, nil
}

// Detect finds faces in an RGB image.
func (d *YuNetDetector) Detect(img *gocv.Mat) ([]Detection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, ErrDetectorClosed
	}
	if img == nil || img.Empty() {
		return nil, nil
	}

	// The network was trained on BGR input.
	gocv.CvtColor(*img, &d.bgr, gocv.ColorRGBToBGR)

	input := d.bgr
	if scale := shortRangeScale(d.config.ModelSelection, img.Cols(), img.Rows()); scale < 1 {
		size := image.Pt(int(float64(img.Cols())*scale), int(float64(img.Rows())*scale))
		gocv.Resize(d.bgr, &d.small, size, 0, 0, gocv.InterpolationArea)
		input = d.small
	}

	cols := float64(input.Cols())
	rows := float64(input.Rows())
	d.model.SetInputSize(image.Pt(input.Cols(), input.Rows()))

	faces := gocv.NewMat()
	defer faces.Close()
	d.model.Detect(input, &faces)

	detections := make([]Detection, 0, faces.Rows())
	for r := 0; r < faces.Rows(); r++ {
		score := float64(faces.GetFloatAt(r, yunetScoreCol))
		if score < d.config.MinConfidence {
			continue
		}
		detections = append(detections, Detection{
			Box: RelativeBox{
				XMin:   float64(faces.GetFloatAt(r, 0)) / cols,
				YMin:   float64(faces.GetFloatAt(r, 1)) / rows,
				Width:  float64(faces.GetFloatAt(r, 2)) / cols,
				Height: float64(faces.GetFloatAt(r, 3)) / rows,
			},
			Confidence: score,
		})
	}

	return detections, nil
}

// Close releases the model and scratch buffers. Calling it twice is safe.
func (d *YuNetDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	d.model.Close()
	d.bgr.Close()
	d.small.Close()
	return nil
}
