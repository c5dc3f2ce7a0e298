// Package pkg provides the core libraries for the Sketchpad playground.
//
// # Overview
//
// Sketchpad keeps three UI concerns in sync: a color palette, a percentage
// slider, and a writable surface whose color and line width follow both.
// None of them know about each other. A controller sits in the middle and
// forwards every change to one subscriber. The pkg directory is organized as:
//
//  1. [palette] - The closed set of swatch colors
//  2. [slider] - Slider state and track geometry
//  3. [canvas] - The controller and the writable surface
//  4. [config] - TOML settings
//  5. [observability] - Hooks for canvas events
//  6. [errors] - Structured errors for input validation
//
// # Architecture
//
// The flow of a single interaction:
//
//	swatch tap                         slider drag
//	     ↓                                  ↓
//	Controller.ChangeColor          Track.Drag → State.SetPercentage
//	     ↓                                  ↓
//	State.SetAccentColor            percentage callback on the Controller
//	     ↓                                  ↓
//	Writable.DidChangeColor         Writable.DidChangeLineWidth
//
// Everything runs synchronously on the caller's goroutine. By the time a
// call returns, the surface holds the new values.
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/sketchpad/pkg/canvas"
//	    "github.com/matzehuels/sketchpad/pkg/palette"
//	    "github.com/matzehuels/sketchpad/pkg/slider"
//	)
//
//	ctrl := canvas.NewController()
//	surface := canvas.NewSurface(ctrl)
//
//	track := slider.Track{Width: 500, Height: 44}
//	track.Appear(ctrl.Slider())        // percentage 22
//
//	ctrl.ChangeColor(palette.Purple)   // surface.Color() == Purple
//	track.Drag(ctrl.Slider(), 300)     // surface.LineWidth() == 60
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test -run Example ./...  # Examples only
//
// [palette]: https://pkg.go.dev/github.com/matzehuels/sketchpad/pkg/palette
// [slider]: https://pkg.go.dev/github.com/matzehuels/sketchpad/pkg/slider
// [canvas]: https://pkg.go.dev/github.com/matzehuels/sketchpad/pkg/canvas
// [config]: https://pkg.go.dev/github.com/matzehuels/sketchpad/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/sketchpad/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/sketchpad/pkg/errors
package pkg
