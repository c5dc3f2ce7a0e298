// Package cli implements the sketchpad command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchpad/pkg/buildinfo"
	"github.com/matzehuels/sketchpad/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// logFileName is the session log written while the playground owns the terminal.
const logFileName = config.AppName + ".log"

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// verbose reports whether debug logging was requested on the command line.
func (c *CLI) verbose() bool {
	return c.Logger.GetLevel() <= log.DebugLevel
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          config.AppName,
		Short:        "Sketchpad is a terminal color and line-width playground",
		Long:         `Sketchpad is a small interactive playground: pick a color from the palette, drag the slider, and watch the drawing surface follow along.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.runCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
