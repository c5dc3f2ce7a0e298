package slider

import "github.com/matzehuels/sketchpad/pkg/palette"

// InitialPercentage is the value a State holds before its track appears.
const InitialPercentage = 1.0

// State is the observable model of the slider.
type State struct {
	percentage float64
	accent     palette.Color
	onChange   func(float64)
}

// New returns a State with [InitialPercentage] and the given accent color.
func New(accent palette.Color) *State {
	return &State{
		percentage: InitialPercentage,
		accent:     accent,
	}
}

// Percentage returns the stored percentage.
func (s *State) Percentage() float64 { return s.percentage }

// AccentColor returns the color used to fill the track.
func (s *State) AccentColor() palette.Color { return s.accent }

// SetPercentage stores v and synchronously invokes the registered callback.
// Values are stored as given; callers pre-clamp with [Track.Clamp].
func (s *State) SetPercentage(v float64) {
	s.percentage = v
	if s.onChange != nil {
		s.onChange(v)
	}
}

// SetAccentColor assigns the accent color. No callback fires.
func (s *State) SetAccentColor(c palette.Color) {
	s.accent = c
}

// OnPercentageChange registers fn as the only percentage subscriber,
// replacing any previous one. A nil fn clears the subscription.
func (s *State) OnPercentageChange(fn func(float64)) {
	s.onChange = fn
}
