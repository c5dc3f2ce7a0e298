// Package slider holds the state behind the percentage slider.
//
// [State] stores a percentage and an accent color and notifies a single
// subscriber whenever the percentage changes. It performs no validation:
// keeping the value inside [Track.MinPercentage, 100] is the caller's job.
// [Track] carries the geometry the presentation layer needs to turn a pointer
// position into a clamped percentage before calling [State.SetPercentage].
//
//	s := slider.New(palette.Black)
//	s.OnPercentageChange(func(p float64) { fmt.Println("Percentage:", p) })
//
//	track := slider.Track{Width: 500, Height: 44}
//	track.Appear(s)      // percentage = 22
//	track.Drag(s, 250)   // percentage = 50
//	track.Drag(s, 900)   // percentage = 100
package slider
