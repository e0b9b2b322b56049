package cmd

import (
	"fmt"

	"github.com/PolarWolf314/rcli/internal/textcrypt"
	"github.com/PolarWolf314/rcli/internal/ui"
	"github.com/PolarWolf314/rcli/internal/workflows"

	"github.com/spf13/cobra"
)

func newTextEncryptCmd() *cobra.Command {
	var (
		input     string
		key       string
		outputDir string
		format    = textcrypt.EncryptXChaCha20Poly1305
	)

	encryptCmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt input with XChaCha20-Poly1305",
		Long: `Encrypts the input and prints the key and the base64 envelope as

  key:<base64 key>
  text:<base64 envelope>

With --output, both are written into that directory as
xchacha20poly1305_k.txt and xchacha20poly1305_t.txt instead.

--key is a ` + keyHelp + `. Leave it out, or pass "-", to generate a fresh key.

Examples:
  echo hello | rcli text encrypt
  rcli text encrypt -i secret.txt -k xchacha20poly1305_k.txt -o out`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = encryptFormatFlag(cmd, format)
			Logger.Infof("Starting encrypt command")
			Logger.Debugf("Flags: input=%s, output=%s, format=%s", input, outputDir, format)

			if err := verifyFile("input", input); err != nil {
				return err
			}
			if outputDir != "" {
				if err := verifyPath("output", outputDir); err != nil {
					return err
				}
			}

			noteStdin(input)
			result, err := workflows.Encrypt(cmd.Context(), workflows.EncryptOptions{
				Input:     input,
				Key:       key,
				Format:    format,
				OutputDir: outputDir,
			})
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to encrypt input: %w", err)
			}

			if result.GeneratedKey {
				Logger.Infof("Generated a new %s key", format)
			}

			out := cmd.OutOrStdout()
			if outputDir == "" {
				fmt.Fprintf(out, "key:%s\ntext:%s\n", result.Key, result.Text)
				return nil
			}

			fmt.Fprint(out, ui.EnsureNewline(ui.SuccessLine("Encrypted input:")+ui.FileList(result.Files)))
			return nil
		},
	}

	encryptCmd.Flags().StringVarP(&input, "input", "i", "-", `input file, or "-" for stdin`)
	encryptCmd.Flags().StringVarP(&key, "key", "k", textcrypt.GenerateKeySentinel, keyHelp+`; "-" generates one`)
	encryptCmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory to write the key and envelope into")
	encryptCmd.Flags().Var(&format, "format", "encryption format: xchacha20poly1305")
	return encryptCmd
}
