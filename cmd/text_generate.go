package cmd

import (
	"fmt"

	"github.com/PolarWolf314/rcli/internal/textcrypt"
	"github.com/PolarWolf314/rcli/internal/ui"
	"github.com/PolarWolf314/rcli/internal/workflows"

	"github.com/spf13/cobra"
)

func newTextGenerateCmd() *cobra.Command {
	var (
		outputDir string
		format    = keyFormat{sign: textcrypt.SignBlake3, isSign: true}
	)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate key files",
		Long: `Writes fresh keys into an existing directory, overwriting any previous keys:

  blake3             blake3.txt (32 raw bytes)
  ed25519            ed25519.sk and ed25519.pk (32 raw bytes each)
  xchacha20poly1305  xchacha20poly1305_k.txt (base64 text)

Examples:
  rcli text generate -o keys
  rcli text generate --format ed25519 -o keys`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") && Config != nil {
				format = keyFormat{sign: Config.Text.SignFormat, isSign: true}
			}
			Logger.Infof("Starting generate command")
			Logger.Debugf("Flags: output=%s, format=%s", outputDir, format.String())

			if err := verifyPath("output", outputDir); err != nil {
				return err
			}

			spinner, cleanup := startSpinner(fmt.Sprintf("Generating %s keys...", format.String()), cmd.OutOrStdout())
			defer cleanup()

			var (
				result *workflows.GenerateResult
				err    error
			)
			if format.isSign {
				result, err = workflows.Generate(cmd.Context(), workflows.GenerateOptions{
					Format:    format.sign,
					OutputDir: outputDir,
				})
			} else {
				result, err = workflows.GenerateEncryptionKey(cmd.Context(), workflows.GenerateEncryptionKeyOptions{
					Format:    format.encrypt,
					OutputDir: outputDir,
				})
			}
			if err != nil {
				spinner.FinalMSG = ui.ErrorLine("Failed to generate keys")
				return Logger.ErrorfAndReturn("Failed to generate %s keys: %w", format.String(), err)
			}

			Logger.Infof("Wrote %d key files", len(result.Files))
			spinner.FinalMSG = ui.SuccessLine("Generated "+ui.Highlight.Sprint(format.String())+" keys:") + ui.FileList(result.Files)
			return nil
		},
	}

	generateCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "directory to write key files into")
	generateCmd.Flags().Var(&format, "format", "key format: blake3, ed25519 or xchacha20poly1305")
	return generateCmd
}
