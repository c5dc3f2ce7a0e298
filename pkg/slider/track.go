package slider

import "github.com/matzehuels/sketchpad/pkg/errors"

// MaxPercentage is the upper bound of the slider.
const MaxPercentage = 100.0

// Track describes the slider's on-screen size in points. Height is the
// cross-axis size, which is also the thumb diameter.
type Track struct {
	Width  float64
	Height float64
}

// MinPercentage is the lowest percentage the presentation layer allows:
// half the track height, so the thumb never leaves the track.
func (t Track) MinPercentage() float64 {
	return t.Height / 2
}

// Ratio converts a pointer x offset (points from the left edge) into an
// unclamped percentage. A zero-width track yields 0.
func (t Track) Ratio(x float64) float64 {
	if t.Width <= 0 {
		return 0
	}
	return x / t.Width * 100
}

// Clamp limits raw to [MinPercentage, MaxPercentage].
func (t Track) Clamp(raw float64) float64 {
	return min(max(t.MinPercentage(), raw), MaxPercentage)
}

// Appear initializes s for a track that has just been laid out.
func (t Track) Appear(s *State) {
	s.SetPercentage(t.MinPercentage())
}

// Drag moves the thumb of s to pointer offset x.
func (t Track) Drag(s *State, x float64) {
	s.SetPercentage(t.Clamp(t.Ratio(x)))
}

// Step nudges the percentage of s by delta, clamped to the track.
func (t Track) Step(s *State, delta float64) {
	s.SetPercentage(t.Clamp(s.Percentage() + delta))
}

// Check reports whether p is a percentage this track could produce.
// SetPercentage never calls it; it exists for callers that want to reject
// out-of-range input instead of relying on Clamp.
func (t Track) Check(p float64) error {
	return errors.ValidateRange("percentage", p, t.MinPercentage(), MaxPercentage)
}

// FillWidth is the width of the accent-colored portion of the track.
func (t Track) FillWidth(p float64) float64 {
	return max(0, t.Width*p/100-t.Height/2)
}

// ThumbOffset is the x offset of the thumb's leading edge.
func (t Track) ThumbOffset(p float64) float64 {
	return t.Width*p/100 - t.Height
}
