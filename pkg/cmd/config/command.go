package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/birdayz/felt/pkg/app"
)

// NewCommand returns the "felt config" command with subcommands.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Handle felt configuration",
	}

	cmd.AddCommand(
		newViewCommand(a),
		newPathCommand(a),
		newSetCommand(a),
	)

	return cmd
}

func newViewCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Display the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.Cfg.Marshal()
			if err != nil {
				return fmt.Errorf("unable to encode config: %w", err)
			}
			_, err = a.OutWriter.Write(b)
			return err
		},
	}
}

func newPathCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Display the path of the configuration file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.OutWriter, a.Cfg.Path())
		},
	}
}

func newSetCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "set KEY VALUE",
		Short:   "Set a default in the configuration file",
		Example: "  felt config set output json\n  felt config set pad true",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if key == "output" {
				var f app.OutputFormat
				if err := f.Set(value); err != nil {
					return fmt.Errorf("invalid output: %w", err)
				}
			}
			if err := a.Cfg.Set(key, value); err != nil {
				return err
			}
			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintf(a.OutWriter, "Set %s to %q.\n", key, value)
			return nil
		},
	}
}
