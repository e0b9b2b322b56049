package cmd

import (
	"github.com/PolarWolf314/rcli/internal/textcrypt"
	"github.com/PolarWolf314/rcli/internal/workflows"

	"github.com/spf13/cobra"
)

func newTextDecryptCmd() *cobra.Command {
	var (
		input  string
		key    string
		format = textcrypt.EncryptXChaCha20Poly1305
	)

	decryptCmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a base64 envelope",
		Long: `Decrypts a base64 envelope produced by 'rcli text encrypt' and writes the
plaintext to stdout. Nothing is written if the key is wrong or the envelope
was modified.

--key is a ` + keyHelp + `.

Examples:
  rcli text decrypt -k out/xchacha20poly1305_k.txt -i out/xchacha20poly1305_t.txt`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = encryptFormatFlag(cmd, format)
			Logger.Infof("Starting decrypt command")
			Logger.Debugf("Flags: input=%s, format=%s", input, format)

			if err := verifyFile("input", input); err != nil {
				return err
			}
			if err := requireFlag("key", key); err != nil {
				return err
			}

			noteStdin(input)
			result, err := workflows.Decrypt(cmd.Context(), workflows.DecryptOptions{
				Input:  input,
				Key:    key,
				Format: format,
			})
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to decrypt input: %w", err)
			}

			Logger.Infof("Decrypted %d bytes", len(result.Plaintext))
			return writeResult(cmd.OutOrStdout(), result.Plaintext, true)
		},
	}

	decryptCmd.Flags().StringVarP(&input, "input", "i", "-", `file holding the base64 envelope, or "-" for stdin`)
	decryptCmd.Flags().StringVarP(&key, "key", "k", "", keyHelp)
	decryptCmd.Flags().Var(&format, "format", "encryption format: xchacha20poly1305")
	return decryptCmd
}
