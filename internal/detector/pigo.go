package detector

import (
	"fmt"
	"os"
	"sync"

	"github.com/disintegration/imaging"
	pigo "github.com/esimov/pigo/core"
	"gocv.io/x/gocv"
)

// Cascade tuning for the pigo backend.
const (
	pigoShiftFactor  = 0.1
	pigoScaleFactor  = 1.1
	pigoIoUThreshold = 0.2
	pigoMinSizeShort = 40
	pigoMinSizeFull  = 20

	// pigoQualityCeiling maps a cascade score onto [0,1]; 5 or more is a solid face.
	pigoQualityCeiling = 10.0
)

// PigoDetector implements Detector with the pure Go pigo cascade.
type PigoDetector struct {
	config     Config
	classifier *pigo.Pigo
	gray       gocv.Mat
	mu         sync.Mutex
	closed     bool
}

// NewPigoDetector unpacks the cascade file named by config.PigoCascadePath.
func NewPigoDetector(config Config) (*PigoDetector, error) {
	cascade, err := os.ReadFile(config.PigoCascadePath)
	if err != nil {
		return nil, fmt.Errorf("%w: read cascade: %v", ErrModelUnavailable, err)
	}

	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, fmt.Errorf("unpack cascade %s: %w", config.PigoCascadePath, err)
	}

	return &PigoDetector{
		config:     config,
		classifier: classifier,
		gray:       gocv.NewMat(),
	}, nil
}

// Detect finds faces in an RGB image.
func (d *PigoDetector) Detect(img *gocv.Mat) ([]Detection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, ErrDetectorClosed
	}
	if img == nil || img.Empty() {
		return nil, nil
	}

	gocv.CvtColor(*img, &d.gray, gocv.ColorRGBToGray)
	src, err := d.gray.ToImage()
	if err != nil {
		return nil, fmt.Errorf("export gray frame: %w", err)
	}

	minSize := pigoMinSizeFull
	if scale := shortRangeScale(d.config.ModelSelection, img.Cols(), img.Rows()); scale < 1 {
		src = imaging.Fit(src, int(float64(img.Cols())*scale), int(float64(img.Rows())*scale), imaging.Box)
		minSize = pigoMinSizeShort
	}

	cols, rows := src.Bounds().Dx(), src.Bounds().Dy()
	params := pigo.CascadeParams{
		MinSize:     minSize,
		MaxSize:     max(cols, rows),
		ShiftFactor: pigoShiftFactor,
		ScaleFactor: pigoScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pigo.RgbToGrayscale(src),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	faces := d.classifier.RunCascade(params, 0)
	faces = d.classifier.ClusterDetections(faces, pigoIoUThreshold)

	detections := make([]Detection, 0, len(faces))
	for _, f := range faces {
		confidence := min(1, max(0, float64(f.Q)/pigoQualityCeiling))
		if confidence < d.config.MinConfidence {
			continue
		}
		detections = append(detections, pigoToDetection(f, cols, rows, confidence))
	}

	return detections, nil
}

// Close releases the scratch buffer. Calling it twice is safe.
func (d *PigoDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	return d.gray.Close()
}

// pigoToDetection converts a center/scale square into a relative box.
func pigoToDetection(f pigo.Detection, cols, rows int, confidence float64) Detection {
	half := float64(f.Scale) / 2
	return Detection{
		Box: RelativeBox{
			XMin:   (float64(f.Col) - half) / float64(cols),
			YMin:   (float64(f.Row) - half) / float64(rows),
			Width:  float64(f.Scale) / float64(cols),
			Height: float64(f.Scale) / float64(rows),
		},
		Confidence: confidence,
	}
}
