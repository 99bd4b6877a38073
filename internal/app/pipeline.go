package app

import (
	"context"
	"fmt"

	"github.com/ayusman/idcam/internal/detector"
	"github.com/ayusman/idcam/internal/imgproc"
	"gocv.io/x/gocv"
)

// Run streams frames until the quit key, an interrupt on ctx or the end of
// the camera stream. All three are normal exits and return nil; only a
// failing detector is reported. Resources are released on every path.
//
// Per frame:
// 1. Read a BGR frame
// 2. Detect faces on an RGB copy
// 3. Blur every face region of the BGR frame in place
// 4. Stylize the blurred frame into a new image
// 5. Draw the HUD and a bracket box per face on the stylized image
// 6. Show it and poll for the quit key
func (a *App) Run(ctx context.Context) error {
	if a.state != StateCameraOpen {
		return fmt.Errorf("%w: state is %s", ErrNotReady, a.state)
	}

	// Release failures are logged only; they don't turn a normal exit into an error.
	defer func() {
		if cerr := a.Close(); cerr != nil {
			a.log("system").WithError(cerr).Error("Release failed")
		}
	}()

	a.state = StateStreaming
	a.log("system").Info("Starting surveillance stream...")

	rgb := gocv.NewMat()
	defer rgb.Close()

	for {
		select {
		case <-ctx.Done():
			a.log("system").Info("Force quit detected.")
			return nil
		default:
		}

		frame, err := a.camera.ReadFrame()
		if err != nil {
			a.log("camera").WithError(err).Warn("Dropped frame or stream ended.")
			return nil
		}

		out, err := a.processFrame(frame, &rgb)
		frame.Close()
		if err != nil {
			return err
		}

		a.display.Show(&out)
		out.Close()

		if key := a.display.PollKey(a.config.KeyPollDelay); key >= 0 && key&0xFF == a.config.QuitKey {
			a.log("system").Info("Quit key pressed.")
			return nil
		}
	}
}

// processFrame blurs the faces of frame in place and returns the stylized,
// annotated copy. rgb is scratch space reused across frames.
func (a *App) processFrame(frame *gocv.Mat, rgb *gocv.Mat) (gocv.Mat, error) {
	gocv.CvtColor(*frame, rgb, gocv.ColorBGRToRGB)

	faces, err := a.detector.Detect(rgb)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("detect faces: %w", err)
	}

	width, height := frame.Cols(), frame.Rows()
	rects := make([]detector.Rect, 0, len(faces))
	for _, face := range faces {
		r := detector.Normalize(face, width, height)
		rects = append(rects, r)
		imgproc.ApplyBlur(frame, r, a.config.BlurKernel, a.config.BlurSigma)
	}

	out := imgproc.ApplyStylize(frame)

	a.renderer.DrawInterface(&out)
	for _, r := range rects {
		if r.Empty() {
			continue
		}
		a.renderer.DrawDetectionBox(&out, r)
	}

	return out, nil
}
