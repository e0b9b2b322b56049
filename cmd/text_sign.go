package cmd

import (
	"fmt"

	"github.com/PolarWolf314/rcli/internal/textcrypt"
	"github.com/PolarWolf314/rcli/internal/workflows"

	"github.com/spf13/cobra"
)

func newTextSignCmd() *cobra.Command {
	var (
		input  string
		key    string
		format = textcrypt.SignBlake3
	)

	signCmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign input with a BLAKE3 or Ed25519 key",
		Long: `Signs the input and prints the signature as URL-safe base64.

The key is a key file: 32 raw bytes for blake3 (blake3.txt), the 32 byte
Ed25519 seed for ed25519 (ed25519.sk).

Examples:
  rcli text sign -k blake3.txt -i message.txt
  cat message.txt | rcli text sign --format ed25519 -k ed25519.sk`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = signFormatFlag(cmd, format)
			Logger.Infof("Starting sign command")
			Logger.Debugf("Flags: input=%s, key=%s, format=%s", input, key, format)

			if err := verifyFile("input", input); err != nil {
				return err
			}
			if err := requireFlag("key", key); err != nil {
				return err
			}

			noteStdin(input)
			result, err := workflows.Sign(cmd.Context(), workflows.SignOptions{
				Input:  input,
				Key:    key,
				Format: format,
			})
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to sign input: %w", err)
			}

			Logger.Infof("Signed input with %s", format)
			fmt.Fprintln(cmd.OutOrStdout(), result.Signature)
			return nil
		},
	}

	signCmd.Flags().StringVarP(&input, "input", "i", "-", `input file, or "-" for stdin`)
	signCmd.Flags().StringVarP(&key, "key", "k", "", "signing key file")
	signCmd.Flags().Var(&format, "format", "signature format: blake3 or ed25519")
	return signCmd
}
