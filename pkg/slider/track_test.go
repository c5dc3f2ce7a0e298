package slider

import (
	"testing"

	"github.com/matzehuels/sketchpad/pkg/errors"
	"github.com/matzehuels/sketchpad/pkg/palette"
)

var defaultTrack = Track{Width: 500, Height: 44}

func TestMinPercentage(t *testing.T) {
	if got := defaultTrack.MinPercentage(); got != 22 {
		t.Errorf("MinPercentage() = %v, want 22", got)
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name  string
		track Track
		x     float64
		want  float64
	}{
		{"left edge", defaultTrack, 0, 0},
		{"middle", defaultTrack, 250, 50},
		{"right edge", defaultTrack, 500, 100},
		{"past right edge", defaultTrack, 750, 150},
		{"zero width", Track{Height: 44}, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.track.Ratio(tt.x); got != tt.want {
				t.Errorf("Ratio(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		raw  float64
		want float64
	}{
		{150, 100},
		{0, 22},
		{-10, 22},
		{22, 22},
		{60, 60},
		{100, 100},
	}

	for _, tt := range tests {
		if got := defaultTrack.Clamp(tt.raw); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestAppear(t *testing.T) {
	s := New(palette.Black)

	var notified float64
	s.OnPercentageChange(func(p float64) { notified = p })
	defaultTrack.Appear(s)

	if s.Percentage() != 22 {
		t.Errorf("Percentage() after Appear = %v, want 22", s.Percentage())
	}
	if notified != 22 {
		t.Errorf("callback got %v, want 22", notified)
	}
}

func TestDragClampsBothEnds(t *testing.T) {
	s := New(palette.Black)

	// Raw ratio 150 -> upper clamp.
	defaultTrack.Drag(s, 750)
	if s.Percentage() != 100 {
		t.Errorf("drag to ratio 150: Percentage() = %v, want 100", s.Percentage())
	}

	// Raw ratio 0 -> lower clamp of trackHeight/2.
	defaultTrack.Drag(s, 0)
	if s.Percentage() != defaultTrack.Height/2 {
		t.Errorf("drag to ratio 0: Percentage() = %v, want %v", s.Percentage(), defaultTrack.Height/2)
	}

	defaultTrack.Drag(s, 300)
	if s.Percentage() != 60 {
		t.Errorf("drag to x=300: Percentage() = %v, want 60", s.Percentage())
	}
}

func TestStep(t *testing.T) {
	s := New(palette.Black)
	defaultTrack.Appear(s)

	defaultTrack.Step(s, 5)
	if s.Percentage() != 27 {
		t.Errorf("Step(+5) = %v, want 27", s.Percentage())
	}

	defaultTrack.Step(s, -50)
	if s.Percentage() != 22 {
		t.Errorf("Step(-50) = %v, want 22", s.Percentage())
	}

	s.SetPercentage(98)
	defaultTrack.Step(s, 5)
	if s.Percentage() != 100 {
		t.Errorf("Step(+5) from 98 = %v, want 100", s.Percentage())
	}
}

func TestCheck(t *testing.T) {
	if err := defaultTrack.Check(50); err != nil {
		t.Errorf("Check(50) = %v, want nil", err)
	}

	err := defaultTrack.Check(10)
	if !errors.Is(err, errors.ErrCodeOutOfRange) {
		t.Errorf("Check(10) = %v, want %s", err, errors.ErrCodeOutOfRange)
	}
	if err := defaultTrack.Check(101); err == nil {
		t.Error("Check(101) = nil, want error")
	}
}

func TestGeometry(t *testing.T) {
	if got := defaultTrack.FillWidth(100); got != 478 {
		t.Errorf("FillWidth(100) = %v, want 478", got)
	}
	if got := defaultTrack.FillWidth(1); got != 0 {
		t.Errorf("FillWidth(1) = %v, want 0", got)
	}
	if got := defaultTrack.ThumbOffset(50); got != 206 {
		t.Errorf("ThumbOffset(50) = %v, want 206", got)
	}
}
