// Package canvas wires palette selection and slider movement to a drawing
// surface.
//
// A [Controller] owns a [slider.State] and at most one [Writable] subscriber.
// Picking a color updates the controller, the slider's accent color and the
// subscriber in one synchronous call. Moving the slider notifies the
// controller, which forwards the value to the subscriber as a line width.
//
//	ctrl := canvas.NewController()
//	surface := canvas.NewSurface(ctrl)   // registers itself
//
//	ctrl.ChangeColor(palette.Purple)
//	surface.Color().Name()               // "Purple"
//	ctrl.Slider().AccentColor()          // palette.Purple
//
//	slider.Track{Width: 500, Height: 44}.Drag(ctrl.Slider(), 300)
//	surface.LineWidth()                  // 60
//
// # Ownership
//
// The controller owns its slider and holds a non-owning reference to the
// subscriber. A [Surface] only touches its controller during construction,
// so there is no reference cycle between the two.
//
// # Concurrency
//
// None of the types in this package are safe for concurrent use. All calls
// are expected on a single UI event goroutine and every notification
// completes before the triggering call returns.
package canvas
