package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchpad/pkg/palette"
)

// paletteCommand creates the palette command, which lists the swatches.
func (c *CLI) paletteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the palette colors in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writePalette(cmd.OutOrStdout())
			return nil
		},
	}
}

// writePalette prints one line per color: index key, swatch, name and hex.
func writePalette(w io.Writer) {
	fmt.Fprintln(w, StyleTitle.Render("Palette"))
	for i, color := range palette.All() {
		swatch := lipgloss.NewStyle().
			Background(color.Lipgloss()).
			Foreground(color.Foreground()).
			Render(" ● ")
		line := fmt.Sprintf("%s %s %-7s %s",
			StyleDim.Render(fmt.Sprintf("%d", i+1)),
			swatch,
			color.Name(),
			StyleDim.Render(color.Hex()),
		)
		fmt.Fprintln(w, line)
	}
}
