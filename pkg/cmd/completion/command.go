package completion

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/birdayz/felt/pkg/app"
)

var shells = []string{"bash", "zsh", "fish", "powershell"}

type generator func(root *cobra.Command, w io.Writer, includeDesc bool) error

var generators = map[string]generator{
	"bash": func(root *cobra.Command, w io.Writer, includeDesc bool) error {
		return root.GenBashCompletionV2(w, includeDesc)
	},
	"zsh": func(root *cobra.Command, w io.Writer, includeDesc bool) error {
		if includeDesc {
			return root.GenZshCompletion(w)
		}
		return root.GenZshCompletionNoDesc(w)
	},
	"fish": func(root *cobra.Command, w io.Writer, includeDesc bool) error {
		return root.GenFishCompletion(w, includeDesc)
	},
	"powershell": func(root *cobra.Command, w io.Writer, includeDesc bool) error {
		if includeDesc {
			return root.GenPowerShellCompletionWithDesc(w)
		}
		return root.GenPowerShellCompletion(w)
	},
}

// NewCommand returns the "felt completion" command and installs flag and
// argument completion on every command already added to root, so it must be
// added last.
func NewCommand(root *cobra.Command, a *app.App) *cobra.Command {
	var noDescriptions bool

	register(root, a)

	cmd := &cobra.Command{
		Use:   "completion SHELL",
		Short: "Generate completion script for bash, zsh, fish or powershell",
		Long: `Print a shell completion script. Scripts complete subcommands, --output
formats and config keys; conversion arguments never fall back to file names.`,
		Example: `  source <(felt completion bash)
  felt completion zsh > "${fpath[1]}/_felt"
  felt completion fish --no-descriptions > ~/.config/fish/completions/felt.fish`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             shells,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := generators[args[0]](root, a.OutWriter, !noDescriptions); err != nil {
				return fmt.Errorf("failed to generate %s completion: %w", args[0], err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noDescriptions, "no-descriptions", false, "Leave completion descriptions out of the script")
	return cmd
}

func register(root *cobra.Command, a *app.App) {
	_ = root.RegisterFlagCompletionFunc("output", app.CompleteOutputFormat)

	for _, c := range root.Commands() {
		switch c.Name() {
		case "string_to_felt", "felt_to_string":
			c.ValidArgsFunction = noFiles
		case "config":
			for _, sub := range c.Commands() {
				if sub.Name() == "set" {
					sub.ValidArgsFunction = a.ValidConfigKeys
				} else {
					sub.ValidArgsFunction = noFiles
				}
			}
		}
	}
}

func noFiles(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveNoFileComp
}
