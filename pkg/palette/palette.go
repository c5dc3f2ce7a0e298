package palette

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/sketchpad/pkg/errors"
)

// Color is one of the palette swatches.
type Color int

// The palette, in display order.
const (
	Red Color = iota
	Blue
	Yellow
	Black
	Purple
	Pink

	numColors
)

// swatch holds the presentation data for one Color.
type swatch struct {
	key  string
	name string
	hex  string
}

var swatches = [numColors]swatch{
	Red:    {key: "red", name: "Red", hex: "#FF3B30"},
	Blue:   {key: "blue", name: "Blue", hex: "#007AFF"},
	Yellow: {key: "yellow", name: "Yellow", hex: "#FFCC00"},
	Black:  {key: "black", name: "Black", hex: "#000000"},
	Purple: {key: "purple", name: "Purple", hex: "#AF52DE"},
	Pink:   {key: "pink", name: "Pink", hex: "#FF2D55"},
}

// lightThreshold is the CIE L* above which dark text reads better on a swatch.
const lightThreshold = 0.6

// All returns every color in display order. The slice is a fresh copy.
func All() []Color {
	out := make([]Color, 0, numColors)
	for c := Color(0); c < numColors; c++ {
		out = append(out, c)
	}
	return out
}

// Len returns the number of colors in the palette.
func Len() int { return int(numColors) }

// Valid reports whether c is a member of the palette.
func (c Color) Valid() bool { return c >= 0 && c < numColors }

// Name returns the human-readable name, e.g. "Purple".
func (c Color) Name() string {
	if !c.Valid() {
		return "Unknown"
	}
	return swatches[c].name
}

// String returns the lower-case key used in flags and config files.
func (c Color) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return swatches[c].key
}

// Hex returns the renderable value as a "#RRGGBB" string.
func (c Color) Hex() string {
	if !c.Valid() {
		return "#808080"
	}
	return swatches[c].hex
}

// Lipgloss returns the renderable value as a terminal color.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Foreground returns a text color that stays readable on top of c.
func (c Color) Foreground() lipgloss.Color {
	if c.lightness() > lightThreshold {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}

// Tint mixes c toward white in Lab space. t=0 yields c, t=1 yields white.
func (c Color) Tint(t float64) lipgloss.Color {
	switch {
	case t <= 0:
		return c.Lipgloss()
	case t >= 1:
		return lipgloss.Color("#FFFFFF")
	}
	base, err := colorful.Hex(c.Hex())
	if err != nil {
		return c.Lipgloss()
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return lipgloss.Color(base.BlendLab(white, t).Clamped().Hex())
}

func (c Color) lightness() float64 {
	cc, err := colorful.Hex(c.Hex())
	if err != nil {
		return 0
	}
	l, _, _ := cc.Lab()
	return l
}

// Parse resolves a color key or display name, ignoring case and surrounding
// whitespace.
func Parse(s string) (Color, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for c := Color(0); c < numColors; c++ {
		if swatches[c].key == norm {
			return c, nil
		}
	}
	return Black, errors.New(errors.ErrCodeInvalidColor, "unknown color %q (want one of: %s)", s, strings.Join(Keys(), ", "))
}

// Keys returns the lower-case keys of all colors in display order.
func Keys() []string {
	keys := make([]string, 0, numColors)
	for _, c := range All() {
		keys = append(keys, c.String())
	}
	return keys
}
