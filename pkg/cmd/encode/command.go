package encode

import (
	"fmt"
	"io"
	"math/big"

	"github.com/manifoldco/promptui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/birdayz/felt/pkg/app"
	"github.com/birdayz/felt/pkg/felt"
)

// NewCommand returns the "felt string_to_felt" command.
func NewCommand(a *app.App) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:     "string_to_felt INPUT_STRING",
		Aliases: []string{"encode"},
		Short:   "Convert a short string to its felt representation",
		Long:    "Convert a string of at most 31 characters to a felt. Each character's scalar value is written as hex and the concatenation is read as one integer.",
		Example: `  felt string_to_felt hello
  felt string_to_felt --pad 'héllo'
  felt string_to_felt -o hex Hi
  felt string_to_felt -i`,
		Args: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return cobra.MaximumNArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			} else {
				var err error
				input, err = prompt(a)
				if err != nil {
					return err
				}
			}

			f, err := Encode(a, input)
			if err != nil {
				return err
			}
			return a.PrintResult(app.NewEncodeResult(input, f, a.Pad))
		},
	}

	a.AddPadFlag(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for the string when no argument is given")
	return cmd
}

// Encode converts input with the encoding selected on a.
func Encode(a *app.App, input string) (*big.Int, error) {
	log := a.Log.WithFields(logrus.Fields{
		"input": input,
		"chars": felt.Len(input),
		"pad":   a.Pad,
	})

	encodeFn := felt.Encode
	if a.Pad {
		encodeFn = felt.EncodePadded
	}

	f, err := encodeFn(input)
	if err != nil {
		log.WithError(err).Debug("Encoding failed")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"fragments": felt.Fragments(input, a.Pad),
		"hex":       felt.Hex(f),
	}).Debug("Encoded string")
	return f, nil
}

func prompt(a *app.App) (string, error) {
	p := promptui.Prompt{
		Label:    "String",
		Validate: felt.CheckLength,
		Stdin:    io.NopCloser(a.InReader),
		Stdout:   nopWriteCloser{a.ErrWriter},
	}

	s, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return s, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
