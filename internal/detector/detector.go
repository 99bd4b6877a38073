package detector

import (
	"errors"
	"fmt"
	"os"

	"gocv.io/x/gocv"
)

var (
	// ErrModelUnavailable is returned when no face model file could be loaded.
	ErrModelUnavailable = errors.New("no face detection model available")

	// ErrDetectorClosed is returned by Detect after Close.
	ErrDetectorClosed = errors.New("detector is closed")
)

// Detector defines the interface for face detection implementations.
type Detector interface {
	// Detect analyzes an RGB image and returns the faces found in it.
	// Returns an empty slice if no faces are detected.
	Detect(img *gocv.Mat) ([]Detection, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for face detection.
type Config struct {
	// ModelSelection picks short range (0, faster) or full range (1) detection.
	ModelSelection int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// YuNetModelPath is the ONNX file for OpenCV's FaceDetectorYN.
	YuNetModelPath string

	// PigoCascadePath is the binary cascade file for the pure Go detector.
	PigoCascadePath string
}

// shortRangeSide is the longest image side fed to a short range model.
const shortRangeSide = 320

// New loads the first face model whose files are present.
// YuNet is preferred; the pigo cascade is used when the ONNX file is missing.
func New(config Config) (Detector, error) {
	if fileExists(config.YuNetModelPath) {
		d, err := NewYuNetDetector(config)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	if fileExists(config.PigoCascadePath) {
		d, err := NewPigoDetector(config)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	return nil, fmt.Errorf("%w: tried %q and %q", ErrModelUnavailable, config.YuNetModelPath, config.PigoCascadePath)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// shortRangeScale returns the factor that fits a cols x rows image into the
// short range input size. Full range and small images use 1.
func shortRangeScale(modelSelection, cols, rows int) float64 {
	if modelSelection != 0 {
		return 1
	}
	side := max(cols, rows)
	if side <= shortRangeSide {
		return 1
	}
	return float64(shortRangeSide) / float64(side)
}
