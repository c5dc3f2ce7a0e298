package slider

import (
	"testing"

	"github.com/matzehuels/sketchpad/pkg/palette"
)

func TestNew(t *testing.T) {
	s := New(palette.Black)

	if s.Percentage() != InitialPercentage {
		t.Errorf("Percentage() = %v, want %v", s.Percentage(), InitialPercentage)
	}
	if s.AccentColor() != palette.Black {
		t.Errorf("AccentColor() = %v, want %v", s.AccentColor(), palette.Black)
	}
}

func TestSetPercentageNotifies(t *testing.T) {
	s := New(palette.Black)

	var got []float64
	s.OnPercentageChange(func(p float64) { got = append(got, p) })

	s.SetPercentage(30)
	s.SetPercentage(75.5)

	if s.Percentage() != 75.5 {
		t.Errorf("Percentage() = %v, want 75.5", s.Percentage())
	}
	if len(got) != 2 || got[0] != 30 || got[1] != 75.5 {
		t.Errorf("callback values = %v, want [30 75.5]", got)
	}
}

func TestSetPercentageStoresBeforeNotifying(t *testing.T) {
	s := New(palette.Black)

	var seen float64
	s.OnPercentageChange(func(float64) { seen = s.Percentage() })
	s.SetPercentage(64)

	if seen != 64 {
		t.Errorf("callback observed Percentage() = %v, want 64", seen)
	}
}

func TestSetPercentageDoesNotClamp(t *testing.T) {
	s := New(palette.Black)

	for _, v := range []float64{-5, 0, 150} {
		s.SetPercentage(v)
		if s.Percentage() != v {
			t.Errorf("SetPercentage(%v) stored %v", v, s.Percentage())
		}
	}
}

func TestSetPercentageWithoutSubscriber(t *testing.T) {
	s := New(palette.Black)
	s.SetPercentage(50)

	if s.Percentage() != 50 {
		t.Errorf("Percentage() = %v, want 50", s.Percentage())
	}
}

func TestOnPercentageChangeReplaces(t *testing.T) {
	s := New(palette.Black)

	var first, second int
	s.OnPercentageChange(func(float64) { first++ })
	s.OnPercentageChange(func(float64) { second++ })
	s.SetPercentage(40)

	if first != 0 || second != 1 {
		t.Errorf("first=%d second=%d, want first=0 second=1", first, second)
	}

	s.OnPercentageChange(nil)
	s.SetPercentage(41)
	if second != 1 {
		t.Errorf("cleared subscriber was called, count=%d", second)
	}
}

func TestSetAccentColorIsSilent(t *testing.T) {
	s := New(palette.Black)

	calls := 0
	s.OnPercentageChange(func(float64) { calls++ })
	s.SetAccentColor(palette.Pink)

	if s.AccentColor() != palette.Pink {
		t.Errorf("AccentColor() = %v, want %v", s.AccentColor(), palette.Pink)
	}
	if calls != 0 {
		t.Errorf("SetAccentColor triggered %d percentage callbacks", calls)
	}
}
