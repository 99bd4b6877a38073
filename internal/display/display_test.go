package display

import (
	"testing"
	"time"

	"gocv.io/x/gocv"
)

func TestWindow_NotOpenedUntilShow(t *testing.T) {
	w := NewWindow("test")

	if w.IsOpen() {
		t.Error("window should not open before Show")
	}
	if k := w.PollKey(time.Millisecond); k != NoKey {
		t.Errorf("PollKey() without window = %d, want NoKey", k)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() on unopened window = %v, want nil", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder('x', 'q')
	defer r.Release()

	var _ Display = r
	var _ Display = (*Window)(nil)

	frame := gocv.NewMatWithSize(10, 20, gocv.MatTypeCV8UC3)
	r.Show(&frame)
	frame.Close()

	if r.Shown() != 1 {
		t.Errorf("Shown() = %d, want 1", r.Shown())
	}
	if r.Last().Cols() != 20 || r.Last().Rows() != 10 {
		t.Errorf("Last() size = %dx%d, want 20x10", r.Last().Cols(), r.Last().Rows())
	}

	for i, want := range []int{'x', 'q', NoKey, NoKey} {
		if got := r.PollKey(time.Millisecond); got != want {
			t.Errorf("PollKey() #%d = %d, want %d", i, got, want)
		}
	}
	if r.Polls() != 4 {
		t.Errorf("Polls() = %d, want 4", r.Polls())
	}

	if err := r.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if !r.Closed() {
		t.Error("Closed() should be true after Close")
	}
}
