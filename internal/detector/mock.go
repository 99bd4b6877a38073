package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	faces  []Detection
	err    error
	calls  int
	closed bool
}

// NewMockDetector creates a new MockDetector that returns the given faces.
func NewMockDetector(faces ...Detection) *MockDetector {
	return &MockDetector{faces: faces}
}

// SetFaces sets the faces that will be returned by Detect.
func (m *MockDetector) SetFaces(faces []Detection) {
	m.faces = faces
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured faces or error.
func (m *MockDetector) Detect(img *gocv.Mat) ([]Detection, error) {
	m.calls++
	if m.closed {
		return nil, ErrDetectorClosed
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.faces, nil
}

// Calls returns how many times Detect ran.
func (m *MockDetector) Calls() int {
	return m.calls
}

// Closed reports whether Close was called.
func (m *MockDetector) Closed() bool {
	return m.closed
}

// Close marks the detector closed.
func (m *MockDetector) Close() error {
	m.closed = true
	return nil
}

// CenteredFace returns a detection covering the middle of the image,
// a stand-in for a person sitting in front of the camera.
func CenteredFace() Detection {
	return Detection{
		Box:        RelativeBox{XMin: 0.35, YMin: 0.25, Width: 0.3, Height: 0.4},
		Confidence: 0.93,
	}
}

// EdgeFace returns a detection that runs past the bottom-right corner.
func EdgeFace() Detection {
	return Detection{
		Box:        RelativeBox{XMin: 0.5, YMin: 0.5, Width: 0.8, Height: 0.8},
		Confidence: 0.71,
	}
}
