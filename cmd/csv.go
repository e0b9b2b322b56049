package cmd

import (
	"fmt"

	"github.com/PolarWolf314/rcli/internal/configs"
	"github.com/PolarWolf314/rcli/internal/csvconv"
	"github.com/PolarWolf314/rcli/internal/ui"
	"github.com/PolarWolf314/rcli/internal/workflows"

	"github.com/spf13/cobra"
)

func newCSVCmd() *cobra.Command {
	var (
		input     string
		output    string
		delimiter string
		header    bool
		format    = csvconv.JSON
	)

	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "Convert CSV to JSON or YAML",
		Long: `Converts a CSV file to JSON or YAML.

With --header (the default) every row becomes an object keyed by the header
columns, in column order. With --header=false every row becomes an array.

The output defaults to output.json or output.yaml in the current directory.

Examples:
  rcli csv -i players.csv
  rcli csv -i players.csv --format yaml -o players.yaml
  rcli csv -i data.csv --delimiter ";" --header=false`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if Config != nil {
				if !flags.Changed("format") {
					format = Config.CSV.Format
				}
				if !flags.Changed("delimiter") {
					delimiter = Config.CSV.Delimiter
				}
			}
			Logger.Infof("Starting csv command")
			Logger.Debugf("Flags: input=%s, output=%s, format=%s, delimiter=%q, header=%t", input, output, format, delimiter, header)

			if err := verifyFile("input", input); err != nil {
				return err
			}
			delim, err := configs.CSVConfig{Delimiter: delimiter}.DelimiterRune()
			if err != nil {
				return err
			}

			spinner, cleanup := startSpinner("Converting CSV...", cmd.OutOrStdout())
			defer cleanup()

			result, err := workflows.ConvertCSV(cmd.Context(), workflows.ConvertCSVOptions{
				Input:  input,
				Output: output,
				Options: csvconv.Options{
					Format:    format,
					Delimiter: delim,
					Header:    header,
				},
			})
			if err != nil {
				spinner.FinalMSG = ui.ErrorLine("Failed to convert " + ui.Path.Sprint(input))
				return Logger.ErrorfAndReturn("Failed to convert csv: %w", err)
			}

			Logger.Infof("Wrote %d bytes to %s", result.Bytes, result.Output)
			spinner.FinalMSG = ui.SuccessLine(fmt.Sprintf("Converted %s to %s", ui.Path.Sprint(input), ui.Path.Sprint(result.Output)))
			return nil
		},
	}

	csvCmd.Flags().StringVarP(&input, "input", "i", "", "CSV file to convert")
	csvCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default output.<format>)")
	csvCmd.Flags().StringVar(&delimiter, "delimiter", ",", "field delimiter")
	csvCmd.Flags().BoolVar(&header, "header", true, "treat the first row as column names")
	csvCmd.Flags().Var(&format, "format", "output format: json or yaml")
	return csvCmd
}
