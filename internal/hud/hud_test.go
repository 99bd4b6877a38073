package hud

import (
	"image"
	"testing"
	"time"

	"github.com/ayusman/idcam/internal/config"
	"github.com/ayusman/idcam/internal/detector"
	"gocv.io/x/gocv"
)

func isPrimary(m *gocv.Mat, x, y int) bool {
	v := m.GetVecbAt(y, x)
	return v[0] == 0 && v[1] == 255 && v[2] == 0
}

func TestRenderer_StatusText(t *testing.T) {
	r := New(config.Default())

	ticks := []time.Time{
		time.Date(2026, 10, 19, 9, 5, 7, 0, time.Local),
		time.Date(2026, 10, 19, 23, 59, 59, 0, time.Local),
	}
	i := 0
	r.SetClock(func() time.Time {
		ts := ticks[i]
		i++
		return ts
	})

	if got, want := r.StatusText(), "SYSTEM: ONLINE | BUFFER: 09:05:07"; got != want {
		t.Errorf("StatusText() = %q, want %q", got, want)
	}
	// The clock is read again on every call.
	if got, want := r.StatusText(), "SYSTEM: ONLINE | BUFFER: 23:59:59"; got != want {
		t.Errorf("StatusText() = %q, want %q", got, want)
	}
}

func TestRenderer_SetClockNil(t *testing.T) {
	r := New(config.Default())
	r.SetClock(nil)

	if got := r.StatusText(); len(got) != len("SYSTEM: ONLINE | BUFFER: ")+8 {
		t.Errorf("StatusText() = %q, want label plus HH:MM:SS", got)
	}
}

func TestRenderer_DrawInterface(t *testing.T) {
	frame := gocv.Zeros(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	New(config.Default()).DrawInterface(&frame)

	// Text lands in the top-left band only.
	top := frame.Region(image.Rect(0, 0, 640, 90))
	defer top.Close()
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(top, &gray, gocv.ColorBGRToGray)
	if gocv.CountNonZero(gray) == 0 {
		t.Error("expected HUD text pixels in the header band")
	}

	rest := frame.Region(image.Rect(0, 90, 640, 480))
	defer rest.Close()
	restGray := gocv.NewMat()
	defer restGray.Close()
	gocv.CvtColor(rest, &restGray, gocv.ColorBGRToGray)
	if n := gocv.CountNonZero(restGray); n != 0 {
		t.Errorf("found %d drawn pixels below the header band", n)
	}
}

func TestRenderer_DrawDetectionBox(t *testing.T) {
	frame := gocv.Zeros(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	rect := detector.Rect{X: 200, Y: 100, W: 120, H: 160}
	New(config.Default()).DrawDetectionBox(&frame, rect)

	arm := rect.W / 4
	corners := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "top-left corner", x: 200, y: 100, want: true},
		{name: "top-left horizontal arm end", x: 200 + arm - 1, y: 100, want: true},
		{name: "top-left vertical arm end", x: 200, y: 100 + arm - 1, want: true},
		{name: "bottom-right corner", x: 320, y: 260, want: true},
		{name: "bottom-right horizontal arm end", x: 320 - arm + 1, y: 260, want: true},
		{name: "bottom-right vertical arm end", x: 320, y: 260 - arm + 1, want: true},
		{name: "top edge middle is open", x: 260, y: 100, want: false},
		{name: "top-right corner is open", x: 320, y: 100, want: false},
		{name: "bottom-left corner is open", x: 200, y: 260, want: false},
		{name: "centre untouched", x: 260, y: 180, want: false},
	}

	for _, c := range corners {
		t.Run(c.name, func(t *testing.T) {
			if got := isPrimary(&frame, c.x, c.y); got != c.want {
				t.Errorf("primary at (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}

	// Label sits under the box.
	label := frame.Region(image.Rect(200, 262, 360, 285))
	defer label.Close()
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(label, &gray, gocv.ColorBGRToGray)
	if gocv.CountNonZero(gray) == 0 {
		t.Error("expected label pixels below the box")
	}
}
