package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/birdayz/felt/pkg/app"
	"github.com/birdayz/felt/pkg/cmd/completion"
	feltconfig "github.com/birdayz/felt/pkg/cmd/config"
	"github.com/birdayz/felt/pkg/cmd/decode"
	"github.com/birdayz/felt/pkg/cmd/encode"
)

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, _ := NewRootCommand(version, commit)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree around a fresh App.
func NewRootCommand(version, commit string) (*cobra.Command, *app.App) {
	a := app.New()

	root := &cobra.Command{
		Use:          "felt",
		Short:        "Convert short strings to felts and back",
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.BindIO(cmd)
			return a.InitConfig(cmd.Flags())
		},
	}

	root.PersistentFlags().StringVar(&a.CfgFile, "config", "", "config file (default is $HOME/.felt/config)")
	root.PersistentFlags().BoolVarP(&a.Verbose, "verbose", "v", false, "Log conversion details to stderr")
	root.PersistentFlags().VarP(&a.Output, "output", "o", "Set output format (default, raw, hex, json, template)")
	root.PersistentFlags().StringVar(&a.Template, "template", "", "Go template for --output template, with sprig functions")

	root.AddCommand(
		encode.NewCommand(a),
		decode.NewCommand(a),
		feltconfig.NewCommand(a),
	)
	root.AddCommand(completion.NewCommand(root, a))

	return root, a
}
