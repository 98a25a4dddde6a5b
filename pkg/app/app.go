package app

import (
	"fmt"
	"io"
	"os"

	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/birdayz/felt/pkg/config"
)

// App holds all shared mutable state for the CLI. It is created once per
// invocation and threaded into every command package.
type App struct {
	// I/O
	OutWriter    io.Writer
	ErrWriter    io.Writer
	InReader     io.Reader
	ColorableOut io.Writer

	// Config state
	Cfg     config.Config
	CfgFile string
	Verbose bool

	// Conversion and display options
	Output   OutputFormat
	Template string
	Pad      bool
	JSONFmt  *prettyjson.Formatter

	Log *logrus.Logger
}

// New creates an App with sane defaults.
func New() *App {
	jsonFmt := prettyjson.NewFormatter()
	jsonFmt.DisabledColor = !isatty.IsTerminal(os.Stdout.Fd())

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return &App{
		OutWriter:    os.Stdout,
		ErrWriter:    os.Stderr,
		InReader:     os.Stdin,
		ColorableOut: colorable.NewColorableStdout(),
		Output:       OutputFormatDefault,
		JSONFmt:      jsonFmt,
		Log:          log,
	}
}

// BindIO points the App at the command's streams. Output that is not the
// process stdout is never colored.
func (a *App) BindIO(cmd *cobra.Command) {
	a.OutWriter = cmd.OutOrStdout()
	a.ErrWriter = cmd.ErrOrStderr()
	a.InReader = cmd.InOrStdin()

	if a.OutWriter != os.Stdout {
		a.ColorableOut = a.OutWriter
		a.JSONFmt.DisabledColor = true
	}
	a.Log.SetOutput(a.ErrWriter)
}

// InitConfig reads the config file and applies its values to every option
// not set explicitly on the command line.
// Called by PersistentPreRunE on the root command.
func (a *App) InitConfig(flags *pflag.FlagSet) error {
	var err error
	a.Cfg, err = config.ReadConfig(a.CfgFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if !flags.Changed("output") && a.Cfg.Output != "" {
		if err := a.Output.Set(a.Cfg.Output); err != nil {
			return fmt.Errorf("invalid config: output: %w", err)
		}
	}
	if !flags.Changed("template") && a.Cfg.Template != "" {
		a.Template = a.Cfg.Template
	}
	if !flags.Changed("pad") && a.Cfg.Pad {
		a.Pad = true
	}
	if !flags.Changed("verbose") && a.Cfg.Verbose {
		a.Verbose = true
	}

	if a.Verbose {
		a.Log.SetLevel(logrus.DebugLevel)
	}

	a.Log.WithFields(logrus.Fields{
		"config": a.Cfg.Path(),
		"output": a.Output.String(),
		"pad":    a.Pad,
	}).Debug("Configuration loaded")

	return nil
}

// AddPadFlag installs --pad on cmd.
func (a *App) AddPadFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&a.Pad, "pad", false, "Pack UTF-8 bytes padded to two hex digits so every string round-trips")
}

// ValidConfigKeys provides shell completion for config keys.
func (a *App) ValidConfigKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		if args[0] == "output" {
			return CompleteOutputFormat(cmd, args, toComplete)
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.Keys(), cobra.ShellCompDirectiveNoFileComp
}
