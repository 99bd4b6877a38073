// Package config holds the compiled-in settings of the identity protection camera.
package config

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"gocv.io/x/gocv"
)

// Default camera and detection settings.
const (
	DefaultWindowName    = "Identity Protection Cam"
	DefaultCameraIndex   = 0
	DefaultWidth         = 640
	DefaultHeight        = 480
	DefaultModelSelect   = 0
	DefaultMinConfidence = 0.5
	DefaultBlurKernel    = 99
	DefaultBlurSigma     = 30
	DefaultQuitKey       = 'q'
)

// Model selection values. Short range trades accuracy on distant faces for speed.
const (
	ModelShortRange = 0
	ModelFullRange  = 1
)

// Config is the immutable set of values shared by every component.
// It is passed by value; nothing mutates it after Default returns.
type Config struct {
	WindowName  string
	CameraIndex int
	FrameWidth  int
	FrameHeight int

	ModelSelection  int
	MinConfidence   float64
	YuNetModelPath  string
	PigoCascadePath string

	// Colors are in the channel order gocv uses when drawing on BGR Mats.
	ColorPrimary color.RGBA
	ColorDim     color.RGBA
	Font         gocv.HersheyFont

	Title       string
	StatusLabel string
	BoxLabel    string

	BlurKernel image.Point
	BlurSigma  float64

	QuitKey      int
	KeyPollDelay time.Duration
}

// Default returns the configuration the application runs with.
func Default() Config {
	return Config{
		WindowName:  DefaultWindowName,
		CameraIndex: DefaultCameraIndex,
		FrameWidth:  DefaultWidth,
		FrameHeight: DefaultHeight,

		ModelSelection:  DefaultModelSelect,
		MinConfidence:   DefaultMinConfidence,
		YuNetModelPath:  "models/face_detection_yunet_2023mar.onnx",
		PigoCascadePath: "models/facefinder",

		ColorPrimary: color.RGBA{R: 0, G: 255, B: 0, A: 0},
		ColorDim:     color.RGBA{R: 0, G: 150, B: 0, A: 0},
		Font:         gocv.FontHersheySimplex,

		Title:       "AI FACE BLUR DETECTION",
		StatusLabel: "SYSTEM: ONLINE | BUFFER: ",
		BoxLabel:    "IDENTITY HIDDEN",

		BlurKernel: image.Pt(DefaultBlurKernel, DefaultBlurKernel),
		BlurSigma:  DefaultBlurSigma,

		QuitKey:      DefaultQuitKey,
		KeyPollDelay: time.Millisecond,
	}
}

// Validate reports settings that would make a gocv call fail.
func (c Config) Validate() error {
	var errs []error

	if c.FrameWidth <= 0 || c.FrameHeight <= 0 {
		errs = append(errs, fmt.Errorf("frame size %dx%d must be positive", c.FrameWidth, c.FrameHeight))
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		errs = append(errs, fmt.Errorf("min confidence %.2f outside [0,1]", c.MinConfidence))
	}
	if c.ModelSelection != ModelShortRange && c.ModelSelection != ModelFullRange {
		errs = append(errs, fmt.Errorf("unknown model selection %d", c.ModelSelection))
	}
	// GaussianBlur needs odd, positive kernel sides.
	if c.BlurKernel.X <= 0 || c.BlurKernel.Y <= 0 || c.BlurKernel.X%2 == 0 || c.BlurKernel.Y%2 == 0 {
		errs = append(errs, fmt.Errorf("blur kernel %v must have odd positive sides", c.BlurKernel))
	}
	if c.BlurSigma < 0 {
		errs = append(errs, fmt.Errorf("blur sigma %.1f must not be negative", c.BlurSigma))
	}

	return errors.Join(errs...)
}
