package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

// OutputFormat controls how conversion results are printed.
type OutputFormat string

const (
	OutputFormatDefault  OutputFormat = "default"
	OutputFormatRaw      OutputFormat = "raw"
	OutputFormatHex      OutputFormat = "hex"
	OutputFormatJSON     OutputFormat = "json"
	OutputFormatTemplate OutputFormat = "template"
)

var outputFormats = []string{"default", "raw", "hex", "json", "template"}

func (e *OutputFormat) String() string {
	return string(*e)
}

func (e *OutputFormat) Set(v string) error {
	switch v {
	case "default", "raw", "hex", "json", "template":
		*e = OutputFormat(v)
		return nil
	default:
		return fmt.Errorf("must be one of: default, raw, hex, json, template")
	}
}

func (e *OutputFormat) Type() string {
	return "OutputFormat"
}

// CompleteOutputFormat provides shell completion for --output.
func CompleteOutputFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return outputFormats, cobra.ShellCompDirectiveNoFileComp
}
