package decode

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/birdayz/felt/pkg/app"
	"github.com/birdayz/felt/pkg/felt"
)

// NewCommand returns the "felt felt_to_string" command.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "felt_to_string INPUT_FELT...",
		Aliases: []string{"decode"},
		Short:   "Convert felts back to a string",
		Long:    "Convert one or more felts to text and concatenate the results in order. Felts are decimal integers, or hex when prefixed with 0x.",
		Example: `  felt felt_to_string 448378203247
  felt felt_to_string 0x48 0x69
  felt felt_to_string --pad 2625`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			felts, err := felt.ParseAll(args)
			if err != nil {
				return err
			}

			decodeFn := felt.Decode
			if a.Pad {
				decodeFn = felt.DecodePadded
			}

			s, err := decodeFn(felts)
			if err != nil {
				var de *felt.DecodeError
				if errors.As(err, &de) {
					a.Log.WithFields(logrus.Fields{
						"index": de.Index,
						"hex":   de.Hex,
					}).WithError(de.Err).Debug("Decoding failed")
				}
				return err
			}

			a.Log.WithFields(logrus.Fields{
				"felts": len(felts),
				"pad":   a.Pad,
			}).Debug("Decoded felts")

			return a.PrintResult(app.NewDecodeResult(felts, s, a.Pad))
		},
	}

	a.AddPadFlag(cmd)
	return cmd
}
