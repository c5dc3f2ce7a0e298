package canvas

import (
	"io"
	"reflect"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchpad/pkg/observability"
	"github.com/matzehuels/sketchpad/pkg/palette"
	"github.com/matzehuels/sketchpad/pkg/slider"
)

// InitialLineWidth is the line width of a fresh controller.
const InitialLineWidth = 1.0

// Writable receives the attribute changes a Controller propagates.
type Writable interface {
	DidChangeColor(c palette.Color)
	DidChangeLineWidth(width float64)
}

// LineWidthFromPercentage converts a slider percentage into a line width.
// The mapping is the identity: one percent is one point of width (or font
// size in the editor). Percentage and line width stay separate attributes so
// the mapping can change without touching either side.
func LineWidthFromPercentage(p float64) float64 {
	return p
}

// Controller mediates between the palette, the slider and one Writable.
type Controller struct {
	color     palette.Color
	lineWidth float64
	slider    *slider.State
	writable  Writable
	logger    *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithInitialColor overrides the starting color (Black by default).
func WithInitialColor(color palette.Color) Option {
	return func(c *Controller) {
		if color.Valid() {
			c.color = color
		}
	}
}

// NewController returns a controller with its own slider. The slider's accent
// starts equal to the controller's color.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		color:     palette.Black,
		lineWidth: InitialLineWidth,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.slider = slider.New(c.color)
	c.slider.OnPercentageChange(c.didChangePercentage)
	return c
}

// Color returns the current color.
func (c *Controller) Color() palette.Color { return c.color }

// LineWidth returns the last line width derived from the slider.
func (c *Controller) LineWidth() float64 { return c.lineWidth }

// Slider returns the slider state owned by c.
func (c *Controller) Slider() *slider.State { return c.slider }

// Writable returns the registered subscriber, or nil.
func (c *Controller) Writable() Writable { return c.writable }

// ChangeColor selects color, mirrors it into the slider's accent color and
// notifies the subscriber if one is registered.
func (c *Controller) ChangeColor(color palette.Color) {
	c.color = color
	c.slider.SetAccentColor(color)
	c.logger.Debug("color selected", "color", color.Name())

	delivered := c.writable != nil
	if delivered {
		c.writable.DidChangeColor(color)
	}
	observability.Canvas().OnColorChanged(color.Name(), delivered)
}

// didChangePercentage is the slider callback. It forwards the percentage to
// the subscriber as a line width.
func (c *Controller) didChangePercentage(p float64) {
	c.logger.Debugf("Percentage: %g", p)
	observability.Canvas().OnPercentageChanged(p)

	c.lineWidth = LineWidthFromPercentage(p)
	delivered := c.writable != nil
	if delivered {
		c.writable.DidChangeLineWidth(c.lineWidth)
	}
	observability.Canvas().OnLineWidthChanged(c.lineWidth, delivered)
}

// RegisterWritable makes w the only subscriber. A previous subscriber, if
// any, receives no further notifications.
func (c *Controller) RegisterWritable(w Writable) {
	replaced := c.writable != nil && !sameWritable(c.writable, w)
	c.writable = w
	observability.Canvas().OnWritableRegistered(replaced)
}

// UnregisterWritable clears the subscriber slot if w is the current
// subscriber. It reports whether anything was removed.
func (c *Controller) UnregisterWritable(w Writable) bool {
	if w == nil || !sameWritable(c.writable, w) {
		return false
	}
	c.writable = nil
	return true
}

// sameWritable reports whether a and b are the same subscriber. Values of
// an uncomparable type never match, because == on them panics.
func sameWritable(a, b Writable) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
