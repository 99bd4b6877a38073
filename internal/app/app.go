// Package app drives the identity protection camera: capture, detect, blur, stylize, render, display.
package app

import (
	"errors"
	"fmt"

	"github.com/ayusman/idcam/internal/capture"
	"github.com/ayusman/idcam/internal/config"
	"github.com/ayusman/idcam/internal/detector"
	"github.com/ayusman/idcam/internal/display"
	"github.com/ayusman/idcam/internal/hud"
	"github.com/ayusman/idcam/internal/logging"
	"github.com/sirupsen/logrus"
)

var (
	// ErrCameraUnavailable is returned by New when the camera cannot be opened.
	ErrCameraUnavailable = errors.New("camera access denied or hardware not found")

	// ErrNotReady is returned by Run when the camera is not open.
	ErrNotReady = errors.New("app is not ready to stream")
)

// State is a stage of the application's lifetime.
type State int

const (
	StateUninitialized State = iota
	StateCameraOpen
	StateStreaming
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateCameraOpen:
		return "camera-open"
	case StateStreaming:
		return "streaming"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// App owns the camera, the detector and the display for the lifetime of one run.
type App struct {
	config   config.Config
	camera   capture.Camera
	detector detector.Detector
	renderer *hud.Renderer
	display  display.Display
	logger   *logrus.Logger
	session  string
	state    State
}

// New builds the detector and renderer, then opens the configured camera.
// There is no retry: a camera that cannot be opened fails startup.
func New(cfg config.Config, logger *logrus.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	det, err := detector.New(detector.Config{
		ModelSelection:  cfg.ModelSelection,
		MinConfidence:   cfg.MinConfidence,
		YuNetModelPath:  cfg.YuNetModelPath,
		PigoCascadePath: cfg.PigoCascadePath,
	})
	if err != nil {
		return nil, fmt.Errorf("load face detector: %w", err)
	}

	a := newApp(cfg, logger,
		capture.NewCamera(cfg.CameraIndex, cfg.FrameWidth, cfg.FrameHeight),
		det,
		display.NewWindow(cfg.WindowName),
	)
	if err := a.openCamera(); err != nil {
		det.Close()
		return nil, err
	}

	return a, nil
}

// newApp wires already built collaborators without touching the camera.
func newApp(cfg config.Config, logger *logrus.Logger, cam capture.Camera, det detector.Detector, disp display.Display) *App {
	if logger == nil {
		logger = logging.New(nil)
	}
	return &App{
		config:   cfg,
		camera:   cam,
		detector: det,
		renderer: hud.New(cfg),
		display:  disp,
		logger:   logger,
		session:  logging.NewSession(),
		state:    StateUninitialized,
	}
}

func (a *App) openCamera() error {
	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("%w: %v", ErrCameraUnavailable, err)
	}
	a.state = StateCameraOpen

	w, h := a.camera.Resolution()
	a.log("init").WithFields(logging.Fields{
		"requested": fmt.Sprintf("%dx%d", a.config.FrameWidth, a.config.FrameHeight),
		"delivered": fmt.Sprintf("%dx%d", w, h),
	}).Infof("Camera setup complete. Resolution: %dx%d", a.config.FrameWidth, a.config.FrameHeight)

	return nil
}

// Close releases the camera, the display and the detector.
// It is safe to call more than once and on an app whose camera never opened.
func (a *App) Close() error {
	if a.state == StateClosed {
		return nil
	}

	l := a.log("system")
	l.Info("Releasing resources...")

	var errs []error
	if err := a.camera.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close camera: %w", err))
	}
	if err := a.display.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close display: %w", err))
	}
	if err := a.detector.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close detector: %w", err))
	}

	a.state = StateClosed
	l.Info("Shutdown complete.")

	return errors.Join(errs...)
}

// State returns the current lifecycle state.
func (a *App) State() State {
	return a.state
}

// Session returns the identifier attached to this run's log lines.
func (a *App) Session() string {
	return a.session
}

func (a *App) log(component string) *logrus.Entry {
	return logging.Component(a.logger, a.session, component)
}
