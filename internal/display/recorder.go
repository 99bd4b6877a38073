package display

import (
	"time"

	"gocv.io/x/gocv"
)

// Recorder is a headless Display for tests. It keeps a copy of the last frame
// shown and replays a scripted sequence of key presses.
type Recorder struct {
	last   gocv.Mat
	shown  int
	keys   []int
	polls  int
	closed bool
	errC   error
}

// NewRecorder returns a Recorder that answers PollKey with keys in order,
// then NoKey once they run out.
func NewRecorder(keys ...int) *Recorder {
	return &Recorder{last: gocv.NewMat(), keys: keys}
}

// Show stores a clone of img.
func (r *Recorder) Show(img *gocv.Mat) {
	r.last.Close()
	r.last = img.Clone()
	r.shown++
}

// PollKey returns the next scripted key.
func (r *Recorder) PollKey(delay time.Duration) int {
	r.polls++
	if len(r.keys) == 0 {
		return NoKey
	}
	k := r.keys[0]
	r.keys = r.keys[1:]
	return k
}

// Last returns the most recently shown frame. It stays owned by the Recorder.
func (r *Recorder) Last() *gocv.Mat {
	return &r.last
}

// Shown returns how many frames were displayed.
func (r *Recorder) Shown() int {
	return r.shown
}

// Polls returns how many times PollKey was called.
func (r *Recorder) Polls() int {
	return r.polls
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	return r.closed
}

// SetCloseError makes the next Close calls return err.
func (r *Recorder) SetCloseError(err error) {
	r.errC = err
}

// Close marks the recorder closed. The last frame stays readable until Release.
func (r *Recorder) Close() error {
	r.closed = true
	return r.errC
}

// Release frees the stored frame.
func (r *Recorder) Release() {
	r.last.Close()
}
