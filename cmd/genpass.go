package cmd

import (
	"fmt"

	"github.com/PolarWolf314/rcli/internal/genpass"

	"github.com/spf13/cobra"
)

func newGenpassCmd() *cobra.Command {
	var (
		length      int
		noUppercase bool
		noLowercase bool
		noNumber    bool
		noSymbol    bool
	)

	genpassCmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		Long: `Generates a password from crypto/rand. Look-alike characters (I, O, l, 0)
are never used, and every enabled character class appears at least once.

Examples:
  rcli genpass
  rcli genpass --length 32 --no-symbol`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := genpass.DefaultOptions()
			if Config != nil {
				opts = Config.Genpass.GenpassOptions()
			}

			flags := cmd.Flags()
			if flags.Changed("length") {
				opts.Length = length
			}
			if flags.Changed("no-uppercase") {
				opts.Upper = !noUppercase
			}
			if flags.Changed("no-lowercase") {
				opts.Lower = !noLowercase
			}
			if flags.Changed("no-number") {
				opts.Number = !noNumber
			}
			if flags.Changed("no-symbol") {
				opts.Symbol = !noSymbol
			}
			Logger.Debugf("Options: %+v", opts)

			password, err := genpass.Generate(opts)
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to generate password: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), password)
			return nil
		},
	}

	genpassCmd.Flags().IntVarP(&length, "length", "l", 16, "password length")
	genpassCmd.Flags().BoolVar(&noUppercase, "no-uppercase", false, "leave out uppercase letters")
	genpassCmd.Flags().BoolVar(&noLowercase, "no-lowercase", false, "leave out lowercase letters")
	genpassCmd.Flags().BoolVar(&noNumber, "no-number", false, "leave out digits")
	genpassCmd.Flags().BoolVar(&noSymbol, "no-symbol", false, "leave out symbols")
	return genpassCmd
}
