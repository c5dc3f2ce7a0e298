package palette

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/sketchpad/pkg/errors"
)

func TestAllOrder(t *testing.T) {
	want := []string{"Red", "Blue", "Yellow", "Black", "Purple", "Pink"}

	got := All()
	if len(got) != len(want) {
		t.Fatalf("len(All()) = %d, want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.Name() != want[i] {
			t.Errorf("All()[%d].Name() = %q, want %q", i, c.Name(), want[i])
		}
	}
	if Len() != len(want) {
		t.Errorf("Len() = %d, want %d", Len(), len(want))
	}
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0] = Pink

	if All()[0] != Red {
		t.Error("mutating the result of All() should not affect later calls")
	}
}

func TestSwatchTable(t *testing.T) {
	tests := []struct {
		color Color
		key   string
		name  string
		hex   string
	}{
		{Red, "red", "Red", "#FF3B30"},
		{Blue, "blue", "Blue", "#007AFF"},
		{Yellow, "yellow", "Yellow", "#FFCC00"},
		{Black, "black", "Black", "#000000"},
		{Purple, "purple", "Purple", "#AF52DE"},
		{Pink, "pink", "Pink", "#FF2D55"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if !tt.color.Valid() {
				t.Fatal("Valid() = false")
			}
			if tt.color.String() != tt.key {
				t.Errorf("String() = %q, want %q", tt.color.String(), tt.key)
			}
			if tt.color.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", tt.color.Name(), tt.name)
			}
			if tt.color.Hex() != tt.hex {
				t.Errorf("Hex() = %q, want %q", tt.color.Hex(), tt.hex)
			}
			if tt.color.Lipgloss() != lipgloss.Color(tt.hex) {
				t.Errorf("Lipgloss() = %q, want %q", tt.color.Lipgloss(), tt.hex)
			}
		})
	}
}

func TestInvalidColor(t *testing.T) {
	bad := Color(42)
	if bad.Valid() {
		t.Error("Color(42).Valid() = true")
	}
	if bad.Name() != "Unknown" {
		t.Errorf("Name() = %q, want Unknown", bad.Name())
	}
	if bad.String() != "unknown" {
		t.Errorf("String() = %q, want unknown", bad.String())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"purple", Purple, false},
		{"Purple", Purple, false},
		{"  PINK ", Pink, false},
		{"black", Black, false},
		{"teal", Black, true},
		{"", Black, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidColor) {
				t.Errorf("Parse(%q) code = %v, want %v", tt.input, errors.GetCode(err), errors.ErrCodeInvalidColor)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestForeground(t *testing.T) {
	dark := lipgloss.Color("#000000")
	light := lipgloss.Color("#FFFFFF")

	if got := Yellow.Foreground(); got != dark {
		t.Errorf("Yellow.Foreground() = %q, want %q", got, dark)
	}
	if got := Black.Foreground(); got != light {
		t.Errorf("Black.Foreground() = %q, want %q", got, light)
	}
}

func TestTint(t *testing.T) {
	if got := Red.Tint(0); got != Red.Lipgloss() {
		t.Errorf("Tint(0) = %q, want %q", got, Red.Lipgloss())
	}
	if got := Red.Tint(1); got != lipgloss.Color("#FFFFFF") {
		t.Errorf("Tint(1) = %q, want #FFFFFF", got)
	}
	mid := Black.Tint(0.5)
	if mid == Black.Lipgloss() || mid == lipgloss.Color("#FFFFFF") {
		t.Errorf("Tint(0.5) = %q, want a gray between black and white", mid)
	}
}
