package cmd

import (
	"fmt"

	"github.com/PolarWolf314/rcli/internal/b64"
	"github.com/PolarWolf314/rcli/internal/utils"

	"github.com/spf13/cobra"
)

func newBase64Cmd() *cobra.Command {
	base64Cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode or decode base64",
		Long: `Encodes input as base64 or decodes base64 text.

Formats:
  standard  RFC 4648 alphabet with padding
  urlsafe   URL-safe alphabet without padding

Examples:
  rcli base64 encode -i Cargo.toml
  echo aGVsbG8 | rcli base64 decode --format urlsafe`,
	}
	base64Cmd.AddCommand(newBase64EncodeCmd(), newBase64DecodeCmd())
	return base64Cmd
}

func newBase64EncodeCmd() *cobra.Command {
	var (
		input  string
		format = b64.Standard
	)

	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode input as base64",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Debugf("Flags: input=%s, format=%s", input, format)
			if err := verifyFile("input", input); err != nil {
				return err
			}

			noteStdin(input)
			reader, err := utils.GetReader(input)
			if err != nil {
				return err
			}
			defer reader.Close()

			encoded, err := b64.Encode(reader, format)
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to encode input: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), encoded)
			return nil
		},
	}

	encodeCmd.Flags().StringVarP(&input, "input", "i", "-", `input file, or "-" for stdin`)
	encodeCmd.Flags().Var(&format, "format", "base64 format: standard or urlsafe")
	return encodeCmd
}

func newBase64DecodeCmd() *cobra.Command {
	var (
		input  string
		format = b64.Standard
	)

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode base64 text",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Debugf("Flags: input=%s, format=%s", input, format)
			if err := verifyFile("input", input); err != nil {
				return err
			}

			noteStdin(input)
			reader, err := utils.GetReader(input)
			if err != nil {
				return err
			}
			defer reader.Close()

			decoded, err := b64.Decode(reader, format)
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to decode input: %w", err)
			}
			return writeResult(cmd.OutOrStdout(), decoded, true)
		},
	}

	decodeCmd.Flags().StringVarP(&input, "input", "i", "-", `input file, or "-" for stdin`)
	decodeCmd.Flags().Var(&format, "format", "base64 format: standard or urlsafe")
	return decodeCmd
}
