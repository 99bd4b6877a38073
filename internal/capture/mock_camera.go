package capture

import (
	"fmt"

	"gocv.io/x/gocv"
)

// MockCamera plays back pre-recorded frames for testing
type MockCamera struct {
	frames   []*gocv.Mat
	index    int
	loop     bool
	running  bool
	openErr  error
	closes   int
	released bool
}

func NewMockCamera(frames []*gocv.Mat, loop bool) *MockCamera {
	return &MockCamera{
		frames: frames,
		loop:   loop,
	}
}

// FailOpen makes the next Open return err.
func (c *MockCamera) FailOpen(err error) {
	c.openErr = err
}

func (c *MockCamera) Open() error {
	if c.openErr != nil {
		return c.openErr
	}
	c.running = true
	c.index = 0
	return nil
}

func (c *MockCamera) Close() error {
	c.closes++
	if c.running {
		c.released = true
	}
	c.running = false
	return nil
}

func (c *MockCamera) ReadFrame() (*gocv.Mat, error) {
	if !c.running {
		return nil, ErrCameraNotOpen
	}

	if len(c.frames) == 0 {
		return nil, fmt.Errorf("%w: no frames loaded", ErrFrameUnavailable)
	}

	if c.index >= len(c.frames) {
		if !c.loop {
			return nil, fmt.Errorf("%w: end of recording", ErrFrameUnavailable)
		}
		c.index = 0
	}

	// Clone the frame so the original isn't modified
	frame := c.frames[c.index].Clone()
	c.index++

	return &frame, nil
}

// Resolution reports the size of the first recorded frame.
func (c *MockCamera) Resolution() (int, int) {
	if len(c.frames) == 0 {
		return 0, 0
	}
	return c.frames[0].Cols(), c.frames[0].Rows()
}

func (c *MockCamera) IsOpen() bool {
	return c.running
}

// Closes returns how many times Close was called.
func (c *MockCamera) Closes() int {
	return c.closes
}

// Released reports whether an open camera was closed.
func (c *MockCamera) Released() bool {
	return c.released
}
