package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchpad/pkg/config"
	"github.com/matzehuels/sketchpad/pkg/errors"
	"github.com/matzehuels/sketchpad/pkg/palette"
)

// configFlags are the flags shared by commands that resolve a configuration.
type configFlags struct {
	path    string
	variant string
	color   string
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "config", "", "config file (default $XDG_CONFIG_HOME/sketchpad/config.toml)")
	cmd.Flags().StringVar(&f.variant, "variant", "", "surface variant: button (default), editor")
	cmd.Flags().StringVar(&f.color, "color", "", "initial palette color")
}

// resolve loads the config file and applies flag overrides on top.
func (f *configFlags) resolve(logger *log.Logger) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if f.path != "" {
		logger.Debugf("Loading config from %s", f.path)
		cfg, err = config.Load(f.path)
	} else {
		logger.Debug("Loading default config")
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if f.variant != "" {
		variant, err := errors.ValidateChoice(errors.ErrCodeInvalidVariant, "variant", f.variant, config.Variants...)
		if err != nil {
			return config.Config{}, err
		}
		logger.Debugf("Variant override: %s", variant)
		cfg.SetVariant(variant)
	}
	if f.color != "" {
		color, err := palette.Parse(f.color)
		if err != nil {
			return config.Config{}, err
		}
		logger.Debugf("Color override: %s", color.Name())
		cfg.InitialColor = color.String()
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// configCommand creates the config command for inspecting settings.
func (c *CLI) configCommand() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Print the effective configuration as TOML.

The output combines built-in defaults, the config file (if any) and the
command-line overrides, exactly as 'run' would see them. Redirect it to a
file to get a starting point for your own config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(c.Logger)
			if err != nil {
				return err
			}
			return cfg.Encode(cmd.OutOrStdout())
		},
	}
	flags.register(cmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the default config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
			printFile(cmd.OutOrStdout(), path)
			return nil
		},
	})

	return cmd
}
