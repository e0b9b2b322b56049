package cmd

import (
	"fmt"

	"github.com/PolarWolf314/rcli/internal/textcrypt"
	"github.com/PolarWolf314/rcli/internal/workflows"

	"github.com/spf13/cobra"
)

func newTextVerifyCmd() *cobra.Command {
	var (
		input  string
		key    string
		sig    string
		format = textcrypt.SignBlake3
	)

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature over input",
		Long: `Checks a base64 signature over the input and prints true or false.

A signature that does not match prints false and still exits 0. Malformed
keys or signatures are errors.

Examples:
  rcli text verify -k blake3.txt -i message.txt --sig <signature>
  rcli text verify --format ed25519 -k ed25519.pk -i message.txt --sig <signature>`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = signFormatFlag(cmd, format)
			Logger.Infof("Starting verify command")
			Logger.Debugf("Flags: input=%s, key=%s, format=%s", input, key, format)

			if err := verifyFile("input", input); err != nil {
				return err
			}
			if err := requireFlag("key", key); err != nil {
				return err
			}
			if err := requireFlag("sig", sig); err != nil {
				return err
			}

			noteStdin(input)
			result, err := workflows.Verify(cmd.Context(), workflows.VerifyOptions{
				Input:     input,
				Key:       key,
				Format:    format,
				Signature: sig,
			})
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to verify signature: %w", err)
			}

			Logger.Infof("Signature valid: %t", result.Valid)
			fmt.Fprintln(cmd.OutOrStdout(), result.Valid)
			return nil
		},
	}

	verifyCmd.Flags().StringVarP(&input, "input", "i", "-", `input file, or "-" for stdin`)
	verifyCmd.Flags().StringVarP(&key, "key", "k", "", "verification key file")
	verifyCmd.Flags().StringVarP(&sig, "sig", "s", "", "base64 signature")
	verifyCmd.Flags().Var(&format, "format", "signature format: blake3 or ed25519")
	return verifyCmd
}
