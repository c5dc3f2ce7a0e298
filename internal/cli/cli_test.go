package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchpad/pkg/errors"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Keep the tests away from any real config file.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	for _, name := range []string{"run", "palette", "config", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	if c.verbose() {
		t.Error("info level should not be verbose")
	}
	c.SetLogLevel(LogDebug)
	if !c.verbose() {
		t.Error("debug level should be verbose")
	}
	if got := c.Logger.GetLevel(); got != log.DebugLevel {
		t.Errorf("level = %v, want debug", got)
	}
}

func TestPaletteCommand(t *testing.T) {
	out, err := execute(t, "palette")
	if err != nil {
		t.Fatalf("palette: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want title plus 6 colors:\n%s", len(lines), out)
	}
	want := []string{"Red", "Blue", "Yellow", "Black", "Purple", "Pink"}
	for i, name := range want {
		if !strings.Contains(lines[i+1], name) {
			t.Errorf("line %d = %q, want %s", i+1, lines[i+1], name)
		}
	}
	if !strings.Contains(lines[4], "#000000") {
		t.Errorf("black line = %q, want hex #000000", lines[4])
	}
}

func TestConfigCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "defaults",
			args: []string{"config"},
			want: []string{`variant = "button"`, `initial_color = "black"`, "height = 400.0"},
		},
		{
			name: "editor variant",
			args: []string{"config", "--variant", "Editor"},
			want: []string{`variant = "editor"`, "height = 800.0"},
		},
		{
			name: "color override",
			args: []string{"config", "--color", "PURPLE"},
			want: []string{`initial_color = "purple"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("config: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestConfigCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("initial_color = \"blue\"\n[slider]\nstep = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "config", "--config", path)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	for _, w := range []string{`initial_color = "blue"`, "step = 10.0"} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestConfigVariantFlagKeepsFileWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[window]\nwidth = 300\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	flags := configFlags{path: path, variant: "editor"}
	cfg, err := flags.resolve(newLogger(&logs, log.DebugLevel))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Variant != "editor" {
		t.Errorf("variant = %q, want editor", cfg.Variant)
	}
	if cfg.Window.Width != 300 {
		t.Errorf("window width = %v, want 300 from the file", cfg.Window.Width)
	}
	if cfg.Window.Height != 800 {
		t.Errorf("window height = %v, want the editor default 800", cfg.Window.Height)
	}
	for _, want := range []string{"Loading config from " + path, "Variant override: editor"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("log missing %q:\n%s", want, logs.String())
		}
	}
}

func TestConfigCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown color", []string{"config", "--color", "teal"}, errors.ErrCodeInvalidColor},
		{"unknown variant", []string{"config", "--variant", "canvas"}, errors.ErrCodeInvalidVariant},
		{"missing file", []string{"config", "--config", "/nonexistent/sketchpad.toml"}, errors.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %q, want %q (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestConfigPathCommand(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"config", "path"})
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := root.Execute(); err != nil {
		t.Fatalf("config path: %v", err)
	}
	want := filepath.Join(dir, "sketchpad", "config.toml")
	if !strings.Contains(out.String(), want) {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := execute(t, "completion", shell)
			if err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out, "sketchpad") {
				t.Errorf("completion script does not mention sketchpad")
			}
		})
	}

	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}

func TestWriteSummary(t *testing.T) {
	m, _ := newTestModel(t, "button")
	m = appear(t, m)
	m, _ = update(t, m, runes("6"))

	var buf bytes.Buffer
	writeSummary(&buf, m, "/tmp/sketchpad.log")

	out := buf.String()
	for _, want := range []string{"Session test finished", "button", "Pink", "22", "/tmp/sketchpad.log"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
