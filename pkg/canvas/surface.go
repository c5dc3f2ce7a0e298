package canvas

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchpad/pkg/palette"
)

// Surface is the Writable behind the text editor and the drawing canvas.
// It keeps the effective color and line width for the view to render.
type Surface struct {
	color     palette.Color
	lineWidth float64
	logger    *log.Logger
}

var _ Writable = (*Surface)(nil)

// SurfaceOption configures a Surface.
type SurfaceOption func(*Surface)

// WithSurfaceLogger sets the logger that receives change notices.
func WithSurfaceLogger(l *log.Logger) SurfaceOption {
	return func(s *Surface) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSurface binds a new surface to ctrl. The surface starts with the
// controller's current color and line width and registers itself as the
// controller's subscriber, displacing any previous one.
func NewSurface(ctrl *Controller, opts ...SurfaceOption) *Surface {
	s := &Surface{
		color:     ctrl.Color(),
		lineWidth: ctrl.LineWidth(),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	ctrl.RegisterWritable(s)
	return s
}

// Color returns the effective color.
func (s *Surface) Color() palette.Color { return s.color }

// LineWidth returns the effective line width.
func (s *Surface) LineWidth() float64 { return s.lineWidth }

// FontSize returns the line width read as a font size in points.
func (s *Surface) FontSize() float64 { return s.lineWidth }

// DidChangeColor implements Writable.
func (s *Surface) DidChangeColor(c palette.Color) {
	s.logger.Infof("Color Changed to %s!", c.Name())
	s.color = c
}

// DidChangeLineWidth implements Writable.
func (s *Surface) DidChangeLineWidth(width float64) {
	s.logger.Infof("Line width changed to %g!", width)
	s.lineWidth = width
}
