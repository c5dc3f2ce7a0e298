package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchpad/pkg/config"
	"github.com/matzehuels/sketchpad/pkg/observability"
)

// runFlags holds flags for the run command.
type runFlags struct {
	configFlags
	logFile string
}

// runCommand creates the run command, which starts the playground.
func (c *CLI) runCommand() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive playground",
		Long: `Start the interactive playground.

Pick a color with the mouse or the number keys, drag the slider (or use +/-)
to change the line width, and watch the surface follow along. The button
variant shows a "Print Color Name" button; the editor variant shows a text
editor whose text color and size track the palette and slider.

While the playground owns the terminal, log output goes to a session log
file instead of stderr.`,
		Example: `  # Button variant, starting on blue
  sketchpad run --color blue

  # Editor variant with debug logging
  sketchpad run --variant editor -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(c.Logger)
			if err != nil {
				return err
			}
			if flags.logFile != "" {
				cfg.Log.File = flags.logFile
			}
			return c.runPlayground(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "session log file (default $XDG_STATE_HOME/sketchpad/sketchpad.log)")

	return cmd
}

// runPlayground runs one playground session and prints a summary once the
// program exits.
func (c *CLI) runPlayground(ctx context.Context, out io.Writer, cfg config.Config) error {
	level := parseLevel(cfg.Log.Level)
	if c.verbose() {
		level = log.DebugLevel
	}

	session, err := openSessionLog(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer session.Close()
	c.Logger.Debugf("Session log: %s", session.path)

	id := uuid.NewString()[:8]
	logger := session.With("session", id)
	logger.Info("session started", "variant", cfg.Variant, "color", cfg.InitialColor)

	observability.SetCanvasHooks(logHooks{logger: logger})
	defer observability.Reset()

	model := newPlaygroundModel(withLogger(ctx, session.Logger), cfg, id)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		logger.Error("session failed", "err", err)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run playground: %w", err)
	}

	result, ok := final.(playgroundModel)
	if !ok {
		return nil
	}
	logger.Info("session ended",
		"color", result.surface.Color().Name(),
		"line_width", result.surface.LineWidth(),
	)
	writeSummary(out, result, session.path)
	return nil
}

// writeSummary prints the state the surface was left in.
func writeSummary(w io.Writer, m playgroundModel, logPath string) {
	printSuccess(w, "Session %s finished", m.session)
	printKeyValue(w, "Variant", m.variant)
	printKeyValue(w, "Color", m.surface.Color().Name())
	printKeyValue(w, "Line width", fmt.Sprintf("%g", m.surface.LineWidth()))
	printInfo(w, "Log written to")
	printFile(w, logPath)
}
